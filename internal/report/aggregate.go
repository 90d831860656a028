package report

import (
	"spotlist-analytics-service/internal/model"
)

// DimensionFunc resolves the grouping label of one record. Returning ""
// buckets the record under "Unknown".
type DimensionFunc func(rec model.SpotRecord) string

// ByCanonical builds a DimensionFunc reading a resolved categorical field.
func ByCanonical(res Resolution, canonical string) DimensionFunc {
	return func(rec model.SpotRecord) string {
		return LabelAt(rec, res, canonical)
	}
}

// ByDay groups records by their air day (YYYY-MM-DD).
func ByDay(res Resolution) DimensionFunc {
	return func(rec model.SpotRecord) string {
		return RecordDay(rec, res)
	}
}

// GroupBy buckets records by the resolved dimension value in a single pass,
// accumulating spot counts, spend, XRP, reach and double-booking sums.
// Output order is insertion order of first encounter; callers sort
// downstream where a report needs a specific order.
func GroupBy(records []model.SpotRecord, res Resolution, dim DimensionFunc) []model.AggregateGroup {
	var (
		order   []string
		buckets = make(map[string]*model.AggregateGroup)
	)

	for _, rec := range records {
		label := dim(rec)
		if label == "" {
			label = "Unknown"
		}

		g, ok := buckets[label]
		if !ok {
			g = &model.AggregateGroup{Label: label}
			buckets[label] = g
			order = append(order, label)
		}

		cost := NumberAt(rec, res, FieldCost)
		g.Spots++
		g.Spend += cost
		g.XRP += NumberAt(rec, res, FieldXRP)
		g.Reach += NumberAt(rec, res, FieldReach)

		if doubleKey := res[FieldIsDouble]; doubleKey != "" && TruthyFlag(rec[doubleKey]) {
			g.DoubleSpend += cost
			g.DoubleSpots++
		}
	}

	groups := make([]model.AggregateGroup, 0, len(order))
	for _, label := range order {
		groups = append(groups, *buckets[label])
	}
	return groups
}

// Totals sums raw accumulators over all groups and derives the whole-set
// ratios, each zero-guarded.
func Totals(groups []model.AggregateGroup) model.ReportTotals {
	var t model.ReportTotals
	for _, g := range groups {
		t.Spots += g.Spots
		t.Spend += g.Spend
		t.XRP += g.XRP
		t.Reach += g.Reach
		t.DoubleSpots += g.DoubleSpots
		t.DoubleSpend += g.DoubleSpend
	}
	t.DoubleRate = ratio(float64(t.DoubleSpots), float64(t.Spots)) * 100
	t.CostPerSpot = ratio(t.Spend, float64(t.Spots))
	t.CostPerXRP = ratio(t.Spend, t.XRP)
	return t
}

// ratio is a zero-guarded division: 0 when the denominator is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
