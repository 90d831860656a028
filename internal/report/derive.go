package report

import (
	"sort"

	"spotlist-analytics-service/internal/model"
)

// Rating bands over the efficiency index, where 100 means return
// proportional to spend.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingAverage   = "Average"
	RatingBelowAvg  = "Below Avg"
)

// HHI concentration bands.
const (
	BandLow      = "Low"
	BandModerate = "Moderate"
	BandHigh     = "High"
)

// Derive computes per-group ratios and indices once all groups and the
// grand totals are known. Every ratio is zero-guarded so that no NaN or
// Inf can reach a consumer; a group in a zero-total set simply carries
// all-zero shares.
func Derive(groups []model.AggregateGroup) []model.DerivedGroupMetrics {
	var totalSpend, totalXRP float64
	for _, g := range groups {
		totalSpend += g.Spend
		totalXRP += g.XRP
	}
	avgSpend := ratio(totalSpend, float64(len(groups)))

	derived := make([]model.DerivedGroupMetrics, 0, len(groups))
	for _, g := range groups {
		d := model.DerivedGroupMetrics{AggregateGroup: g}

		d.CostPerSpot = ratio(g.Spend, float64(g.Spots))
		d.CostPerXRP = ratio(g.Spend, g.XRP)
		d.XRPPerSpot = ratio(g.XRP, float64(g.Spots))
		d.DoubleRate = ratio(float64(g.DoubleSpots), float64(g.Spots)) * 100
		d.ShareOfSpend = ratio(g.Spend, totalSpend) * 100
		d.ShareOfXRP = ratio(g.XRP, totalXRP) * 100

		// 100 = proportional return; the guard keeps zero-spend groups at 0
		// instead of Inf.
		if d.ShareOfSpend > 0 {
			d.EfficiencyIndex = d.ShareOfXRP / d.ShareOfSpend * 100
		}
		d.Rating = RateEfficiency(d.EfficiencyIndex)
		if avgSpend > 0 {
			d.SpendVsAverage = (g.Spend - avgSpend) / avgSpend * 100
		}

		derived = append(derived, d)
	}
	return derived
}

// RateEfficiency maps an efficiency index to its rating band.
func RateEfficiency(index float64) string {
	switch {
	case index >= 120:
		return RatingExcellent
	case index >= 100:
		return RatingGood
	case index >= 80:
		return RatingAverage
	default:
		return RatingBelowAvg
	}
}

// Concentrate runs the cross-entity market concentration analysis over
// label/value pairs: per-entity shares (descending), the
// Herfindahl-Hirschman index with its band, the combined top-three share
// and the leader's percentage gap over the runner-up.
func Concentrate(entities []model.MarketShare) model.Concentration {
	shares := make([]model.MarketShare, len(entities))
	copy(shares, entities)

	var total float64
	for _, e := range shares {
		total += e.Value
	}

	for i := range shares {
		shares[i].Share = ratio(shares[i].Value, total) * 100
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Value > shares[j].Value
	})

	c := model.Concentration{Shares: shares}
	for i, e := range shares {
		c.HHI += e.Share * e.Share
		if i < 3 {
			c.TopThreeShare += e.Share
		}
	}
	c.Band = hhiBand(c.HHI)

	if len(shares) >= 2 && shares[1].Value > 0 {
		c.LeaderGap = (shares[0].Value - shares[1].Value) / shares[1].Value * 100
	}

	return c
}

func hhiBand(hhi float64) string {
	switch {
	case hhi > 2500:
		return BandHigh
	case hhi >= 1500:
		return BandModerate
	default:
		return BandLow
	}
}

// spendShares projects aggregate groups into concentration input keyed on
// spend.
func spendShares(groups []model.AggregateGroup) []model.MarketShare {
	entities := make([]model.MarketShare, 0, len(groups))
	for _, g := range groups {
		entities = append(entities, model.MarketShare{Label: g.Label, Value: g.Spend})
	}
	return entities
}

// EffectiveReach computes the effective-reach curve over a frequency
// distribution: cumulative reach at frequency >= k for k in 1..5, average
// frequency, the share of reach landing in the effective 3-5 exposure band
// and the share wasted above 10 exposures.
func EffectiveReach(dist []model.FrequencyBucket) model.ReachCurve {
	var (
		totalReach    float64
		weightedFreq  float64
		effectiveBand float64
		wasted        float64
	)
	for _, b := range dist {
		totalReach += b.Reach
		weightedFreq += float64(b.Frequency) * b.Reach
		if b.Frequency >= 3 && b.Frequency <= 5 {
			effectiveBand += b.Reach
		}
		if b.Frequency > 10 {
			wasted += b.Reach
		}
	}

	curve := model.ReachCurve{
		TotalReach:          totalReach,
		AverageFrequency:    ratio(weightedFreq, totalReach),
		FrequencyEfficiency: ratio(effectiveBand, totalReach) * 100,
		WastedReach:         ratio(wasted, totalReach) * 100,
	}

	for k := 1; k <= 5; k++ {
		var cum float64
		for _, b := range dist {
			if b.Frequency >= k {
				cum += b.Reach
			}
		}
		curve.Points = append(curve.Points, model.ReachPoint{MinFrequency: k, Reach: cum})
	}

	return curve
}
