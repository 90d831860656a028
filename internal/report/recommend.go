package report

import (
	"fmt"
	"strings"

	"spotlist-analytics-service/internal/model"
)

// Recommendation severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Recommend evaluates the fixed rule table over derived group metrics.
// Rules are independent and may all fire; evaluation order (opportunity,
// optimize, double-booking alert) is fixed so the output ordering is
// deterministic.
func Recommend(groups []model.DerivedGroupMetrics) []model.Recommendation {
	var recs []model.Recommendation
	if len(groups) == 0 {
		return recs
	}

	best := groups[0]
	worst := groups[0]
	for _, g := range groups[1:] {
		if g.EfficiencyIndex > best.EfficiencyIndex {
			best = g
		}
		if g.EfficiencyIndex < worst.EfficiencyIndex {
			worst = g
		}
	}

	if best.EfficiencyIndex > 110 && best.ShareOfSpend < 30 {
		recs = append(recs, model.Recommendation{
			Severity: SeverityInfo,
			Title:    "Opportunity",
			Message: fmt.Sprintf("%s over-performs (efficiency %.0f) on only %.1f%% of spend; consider increasing investment there.",
				best.Label, best.EfficiencyIndex, best.ShareOfSpend),
		})
	}

	if worst.EfficiencyIndex < 80 && worst.ShareOfSpend > 15 {
		recs = append(recs, model.Recommendation{
			Severity: SeverityWarning,
			Title:    "Optimize",
			Message: fmt.Sprintf("%s under-performs (efficiency %.0f) while holding %.1f%% of spend; review the allocation.",
				worst.Label, worst.EfficiencyIndex, worst.ShareOfSpend),
		})
	}

	var offenders []string
	for _, g := range groups {
		if g.DoubleRate > 10 {
			offenders = append(offenders, fmt.Sprintf("%s (%.1f%%)", g.Label, g.DoubleRate))
		}
	}
	if len(offenders) > 0 {
		recs = append(recs, model.Recommendation{
			Severity: SeverityCritical,
			Title:    "Double Booking Alert",
			Message:  "Double-booking rate above 10% in: " + strings.Join(offenders, ", "),
		})
	}

	return recs
}

// windowBucket is one row of the time-window risk table. Shorter detection
// windows mean tighter spot clustering and a higher conflict risk, so they
// should carry a smaller share of budget.
type windowBucket struct {
	minMinutes, maxMinutes int
	level                  string
	riskMin, riskMax       float64
	shareMin, shareMax     float64
}

var windowBuckets = []windowBucket{
	{5, 29, "Very High", 50, 70, 0, 2},
	{30, 59, "High", 25, 45, 10, 13},
	{60, 89, "Medium", 18, 30, 35, 45},
	{90, 120, "Low", 10, 18, 45, 100},
}

// ClassifyWindow buckets a detection window by its minute value and flags
// it over budget when the actual spend share exceeds the bucket's maximum
// recommended share. Minutes outside the 5-120 table clamp to the nearest
// bucket.
func ClassifyWindow(minutes int, actualShare float64) model.WindowRisk {
	bucket := windowBuckets[len(windowBuckets)-1]
	if minutes < windowBuckets[0].minMinutes {
		bucket = windowBuckets[0]
	} else {
		for _, b := range windowBuckets {
			if minutes >= b.minMinutes && minutes <= b.maxMinutes {
				bucket = b
				break
			}
		}
	}

	return model.WindowRisk{
		WindowMinutes:   minutes,
		Level:           bucket.level,
		ConflictRiskMin: bucket.riskMin,
		ConflictRiskMax: bucket.riskMax,
		BudgetShareMin:  bucket.shareMin,
		BudgetShareMax:  bucket.shareMax,
		ActualShare:     actualShare,
		OverBudget:      actualShare > bucket.shareMax,
	}
}

// AnnotateWindows denormalizes externally supplied window summaries into
// one risk row per window, using the window's share of double-booked cost
// as the actual budget share.
func AnnotateWindows(summaries []model.WindowSummary) []model.WindowRisk {
	if len(summaries) == 0 {
		return nil
	}
	risks := make([]model.WindowRisk, 0, len(summaries))
	for _, w := range summaries {
		risk := ClassifyWindow(w.WindowMinutes, finiteOrZero(w.All.PercentCost))
		risk.DoubleSpots = w.All.DoubleSpots
		risk.DoubleCost = finiteOrZero(w.All.DoubleCost)
		risks = append(risks, risk)
	}
	return risks
}
