package report

import (
	"strings"

	"spotlist-analytics-service/internal/model"
)

// ReportType selects which aggregation pipeline runs for a dataset.
type ReportType string

const (
	ReportSpotlist       ReportType = "spotlist"
	ReportDaypart        ReportType = "daypartAnalysis"
	ReportTopTen         ReportType = "topTen"
	ReportReachFrequency ReportType = "reachFrequency"
	ReportDeepAnalysis   ReportType = "deepAnalysis"

	// Explicit-only types; never inferred by the detector.
	ReportChannel  ReportType = "channel"
	ReportCategory ReportType = "category"
	ReportRegional ReportType = "regional"
	ReportNational ReportType = "national"
)

// KnownReportType reports whether t is a type the dispatcher understands.
func KnownReportType(t ReportType) bool {
	switch t {
	case ReportSpotlist, ReportDaypart, ReportTopTen, ReportReachFrequency,
		ReportDeepAnalysis, ReportChannel, ReportCategory, ReportRegional, ReportNational:
		return true
	default:
		return false
	}
}

// detectRule is one priority-ranked predicate over the lowercased key set
// of the first record.
type detectRule struct {
	reportType ReportType
	match      func(keys []string) bool
}

var detectRules = []detectRule{
	{ReportTopTen, func(keys []string) bool {
		return anyContains(keys, "rank")
	}},
	{ReportReachFrequency, func(keys []string) bool {
		return anyContains(keys, "frequency") && anyContains(keys, "reach")
	}},
	{ReportDeepAnalysis, func(keys []string) bool {
		return anyContains(keys, "amr-perc") || anyContains(keys, "amr_perc") || anyContains(keys, "share")
	}},
	{ReportDaypart, func(keys []string) bool {
		return anyContains(keys, "daypart") && !anyContains(keys, "is_double")
	}},
}

// Detect infers the report type from the key shape of the first record. An
// explicitly supplied type passes through unchanged. Empty or malformed
// input defaults to spotlist.
func Detect(records []model.SpotRecord, explicit ReportType) ReportType {
	if explicit != "" {
		return explicit
	}

	keys := firstRecordKeys(records)
	if len(keys) == 0 {
		return ReportSpotlist
	}

	for _, rule := range detectRules {
		if rule.match(keys) {
			return rule.reportType
		}
	}
	return ReportSpotlist
}

func firstRecordKeys(records []model.SpotRecord) []string {
	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, strings.ToLower(k))
		}
		return keys
	}
	return nil
}

func anyContains(keys []string, needle string) bool {
	for _, k := range keys {
		if strings.Contains(k, needle) {
			return true
		}
	}
	return false
}
