package report

import (
	"sort"

	"spotlist-analytics-service/internal/model"
)

// Entry points, one per report type. Each takes the (already filtered)
// record set plus the source's field map and returns a fully computed,
// render-ready metrics object. Per-group and whole-set ratios are always
// recomputed from the records at hand, never taken from upstream
// precomputed blocks.

// Daypart runs the daypart efficiency analysis.
func Daypart(records []model.SpotRecord, fm model.FieldMap) model.GroupedReport {
	return grouped(records, fm, FieldDaypart, "daypart")
}

// Channels runs the per-channel performance analysis.
func Channels(records []model.SpotRecord, fm model.FieldMap) model.GroupedReport {
	return grouped(records, fm, FieldProgram, "channel")
}

// Categories runs the EPG-category analysis.
func Categories(records []model.SpotRecord, fm model.FieldMap) model.GroupedReport {
	return grouped(records, fm, FieldCategory, "category")
}

// Regional runs the per-region analysis.
func Regional(records []model.SpotRecord, fm model.FieldMap) model.GroupedReport {
	return grouped(records, fm, FieldRegion, "region")
}

func grouped(records []model.SpotRecord, fm model.FieldMap, canonical, dimension string) model.GroupedReport {
	rep := model.GroupedReport{Dimension: dimension}
	if len(records) == 0 {
		rep.NoData = true
		return rep
	}

	res := ResolveAll(records, fm)
	groups := GroupBy(records, res, ByCanonical(res, canonical))

	rep.Groups = Derive(groups)
	rep.Totals = Totals(groups)
	rep.Concentration = Concentrate(spendShares(groups))
	rep.Recommendations = Recommend(rep.Groups)
	return rep
}

// TopTen ranks channels by spend and keeps the ten largest, with shares
// computed against the whole set so the cumulative share of the ranking is
// meaningful.
func TopTen(records []model.SpotRecord, fm model.FieldMap) model.TopTenReport {
	var rep model.TopTenReport
	if len(records) == 0 {
		rep.NoData = true
		return rep
	}

	res := ResolveAll(records, fm)
	groups := GroupBy(records, res, ByCanonical(res, FieldProgram))
	derived := Derive(groups)

	sort.SliceStable(derived, func(i, j int) bool {
		return derived[i].Spend > derived[j].Spend
	})

	limit := len(derived)
	if limit > 10 {
		limit = 10
	}

	var cumulative float64
	rep.Entries = make([]model.TopTenEntry, 0, limit)
	for i := 0; i < limit; i++ {
		d := derived[i]
		cumulative += d.ShareOfSpend
		rep.Entries = append(rep.Entries, model.TopTenEntry{
			Rank:            i + 1,
			Label:           d.Label,
			Spend:           d.Spend,
			Spots:           d.Spots,
			XRP:             d.XRP,
			Share:           d.ShareOfSpend,
			CumulativeShare: cumulative,
			EfficiencyIndex: d.EfficiencyIndex,
			Rating:          d.Rating,
		})
	}

	rep.Totals = Totals(groups)
	rep.Concentration = Concentrate(spendShares(groups))
	rep.Recommendations = Recommend(derived)
	return rep
}

// ReachFrequency builds the frequency distribution from the records and
// computes the effective-reach curve over it.
func ReachFrequency(records []model.SpotRecord, fm model.FieldMap) model.ReachFrequencyReport {
	var rep model.ReachFrequencyReport
	if len(records) == 0 {
		rep.NoData = true
		return rep
	}

	res := ResolveAll(records, fm)

	reachByFreq := make(map[int]float64)
	var freqs []int
	for _, rec := range records {
		freq := int(NumberAt(rec, res, FieldFrequency))
		if freq <= 0 {
			continue
		}
		if _, seen := reachByFreq[freq]; !seen {
			freqs = append(freqs, freq)
		}
		reachByFreq[freq] += NumberAt(rec, res, FieldReach)
	}
	sort.Ints(freqs)

	rep.Distribution = make([]model.FrequencyBucket, 0, len(freqs))
	for _, f := range freqs {
		rep.Distribution = append(rep.Distribution, model.FrequencyBucket{Frequency: f, Reach: reachByFreq[f]})
	}

	rep.Curve = EffectiveReach(rep.Distribution)
	if len(rep.Distribution) == 0 {
		rep.NoData = true
	}
	return rep
}

// National runs the whole-set summary: totals, a per-channel breakdown, a
// daily trend and share-of-voice concentration.
func National(records []model.SpotRecord, fm model.FieldMap) model.NationalReport {
	var rep model.NationalReport
	if len(records) == 0 {
		rep.NoData = true
		return rep
	}

	res := ResolveAll(records, fm)
	channelGroups := GroupBy(records, res, ByCanonical(res, FieldProgram))
	trendGroups := GroupBy(records, res, ByDay(res))

	rep.Totals = Totals(channelGroups)
	rep.Channels = Derive(channelGroups)
	rep.Concentration = Concentrate(spendShares(channelGroups))

	trend := Derive(trendGroups)
	sort.SliceStable(trend, func(i, j int) bool {
		return trend[i].Label < trend[j].Label
	})
	rep.Trend = trend

	rep.Recommendations = Recommend(rep.Channels)
	return rep
}
