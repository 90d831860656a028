package model

// AggregateGroup is one bucket of a grouping dimension with raw accumulated
// sums. Derived ratios live in DerivedGroupMetrics.
type AggregateGroup struct {
	Label       string  `json:"label"`
	Spots       int     `json:"spots"`
	Spend       float64 `json:"spend"`
	XRP         float64 `json:"xrp"`
	Reach       float64 `json:"reach"`
	DoubleSpend float64 `json:"double_spend"`
	DoubleSpots int     `json:"double_spots"`
}

// DerivedGroupMetrics extends an AggregateGroup with per-group ratios and
// indices. Every ratio is zero-guarded; no field ever carries NaN or Inf.
type DerivedGroupMetrics struct {
	AggregateGroup

	CostPerSpot     float64 `json:"cost_per_spot"`
	CostPerXRP      float64 `json:"cost_per_xrp"`
	XRPPerSpot      float64 `json:"xrp_per_spot"`
	DoubleRate      float64 `json:"double_rate"`
	ShareOfSpend    float64 `json:"share_of_spend"`
	ShareOfXRP      float64 `json:"share_of_xrp"`
	EfficiencyIndex float64 `json:"efficiency_index"`
	Rating          string  `json:"rating"`
	SpendVsAverage  float64 `json:"spend_vs_average"`
}

// MarketShare is one entity's slice of a concentration analysis.
type MarketShare struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

// Concentration summarizes how spend (or any value) distributes across
// entities: per-entity shares, Herfindahl-Hirschman index with its band,
// the combined share of the three largest entities and the gap between the
// leader and the runner-up.
type Concentration struct {
	Shares        []MarketShare `json:"shares"`
	HHI           float64       `json:"hhi"`
	Band          string        `json:"band"`
	TopThreeShare float64       `json:"top_three_share"`
	LeaderGap     float64       `json:"leader_gap"`
}

// ReachPoint is the cumulative reach at or above a frequency threshold.
type ReachPoint struct {
	MinFrequency int     `json:"min_frequency"`
	Reach        float64 `json:"reach"`
}

// FrequencyBucket is one row of a frequency distribution input.
type FrequencyBucket struct {
	Frequency int     `json:"frequency"`
	Reach     float64 `json:"reach"`
}

// ReachCurve is the effective-reach analysis over a frequency distribution.
type ReachCurve struct {
	Points              []ReachPoint `json:"points"`
	AverageFrequency    float64      `json:"average_frequency"`
	FrequencyEfficiency float64      `json:"frequency_efficiency"`
	WastedReach         float64      `json:"wasted_reach"`
	TotalReach          float64      `json:"total_reach"`
}

// Recommendation is one rule-generated insight.
type Recommendation struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// WindowRisk annotates one WindowSummary row with a risk classification
// derived from the window's minute value.
type WindowRisk struct {
	WindowMinutes   int     `json:"window_minutes"`
	Level           string  `json:"level"`
	ConflictRiskMin float64 `json:"conflict_risk_min"`
	ConflictRiskMax float64 `json:"conflict_risk_max"`
	BudgetShareMin  float64 `json:"budget_share_min"`
	BudgetShareMax  float64 `json:"budget_share_max"`
	ActualShare     float64 `json:"actual_share"`
	OverBudget      bool    `json:"over_budget"`
	DoubleSpots     int     `json:"double_spots"`
	DoubleCost      float64 `json:"double_cost"`
}

// ReportTotals are the whole-set sums and ratios of one analysis run,
// always recomputed from the currently filtered records.
type ReportTotals struct {
	Spots       int     `json:"spots"`
	Spend       float64 `json:"spend"`
	XRP         float64 `json:"xrp"`
	Reach       float64 `json:"reach"`
	DoubleSpots int     `json:"double_spots"`
	DoubleSpend float64 `json:"double_spend"`
	DoubleRate  float64 `json:"double_rate"`
	CostPerSpot float64 `json:"cost_per_spot"`
	CostPerXRP  float64 `json:"cost_per_xrp"`
}

// GroupedReport is the common shape of the daypart, channel, category and
// regional analyses: derived groups plus totals, concentration and
// rule-generated recommendations.
type GroupedReport struct {
	Dimension       string                `json:"dimension"`
	Groups          []DerivedGroupMetrics `json:"groups"`
	Totals          ReportTotals          `json:"totals"`
	Concentration   Concentration         `json:"concentration"`
	Recommendations []Recommendation      `json:"recommendations"`
	NoData          bool                  `json:"no_data"`
}

// TopTenEntry is one ranked row of the top-ten report.
type TopTenEntry struct {
	Rank            int     `json:"rank"`
	Label           string  `json:"label"`
	Spend           float64 `json:"spend"`
	Spots           int     `json:"spots"`
	XRP             float64 `json:"xrp"`
	Share           float64 `json:"share"`
	CumulativeShare float64 `json:"cumulative_share"`
	EfficiencyIndex float64 `json:"efficiency_index"`
	Rating          string  `json:"rating"`
}

// TopTenReport ranks entities by spend and reports how concentrated the
// top of the ranking is.
type TopTenReport struct {
	Entries         []TopTenEntry    `json:"entries"`
	Totals          ReportTotals     `json:"totals"`
	Concentration   Concentration    `json:"concentration"`
	Recommendations []Recommendation `json:"recommendations"`
	NoData          bool             `json:"no_data"`
}

// ReachFrequencyReport is the effective-reach analysis of a
// frequency-distribution dataset.
type ReachFrequencyReport struct {
	Distribution    []FrequencyBucket `json:"distribution"`
	Curve           ReachCurve        `json:"curve"`
	Recommendations []Recommendation  `json:"recommendations"`
	NoData          bool              `json:"no_data"`
}

// NationalReport is the whole-set summary: totals, a per-channel breakdown,
// a daily trend and share-of-voice concentration.
type NationalReport struct {
	Totals          ReportTotals          `json:"totals"`
	Channels        []DerivedGroupMetrics `json:"channels"`
	Trend           []DerivedGroupMetrics `json:"trend"`
	Concentration   Concentration         `json:"concentration"`
	Recommendations []Recommendation      `json:"recommendations"`
	NoData          bool                  `json:"no_data"`
}
