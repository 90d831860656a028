package report

import (
	"sort"
	"strings"

	"spotlist-analytics-service/internal/model"
)

// Canonical metric names understood by the resolver. Each maps to an
// ordered list of literal key names seen across the known data sources;
// the explicit FieldMap entry always wins over the list.
const (
	FieldCost      = "cost"
	FieldProgram   = "program"
	FieldDaypart   = "daypart"
	FieldCategory  = "epg_category"
	FieldXRP       = "xrp"
	FieldReach     = "reach"
	FieldDuration  = "duration"
	FieldDate      = "date"
	FieldBrand     = "brand"
	FieldPlacement = "placement"
	FieldIsDouble  = "is_double"
	FieldRegion    = "region"
	FieldFrequency = "frequency"
)

var fallbackKeys = map[string][]string{
	FieldCost:      {"cost_numeric", "cost", "Spend", "spend", "Cost"},
	FieldProgram:   {"program", "Program", "Programme", "channel", "Channel", "station"},
	FieldDaypart:   {"daypart", "Daypart", "day_part"},
	FieldCategory:  {"epg_category", "EPG Category", "category", "Category", "genre"},
	FieldXRP:       {"xrp", "XRP", "xrp_numeric", "grp", "GRP"},
	FieldReach:     {"reach", "Reach", "reach_perc", "reach_percentage"},
	FieldDuration:  {"duration", "Duration", "spot_length", "length"},
	FieldDate:      {"date", "Date", "timestamp", "air_date"},
	FieldBrand:     {"brand", "Brand", "advertiser", "Advertiser"},
	FieldPlacement: {"placement", "Placement", "position"},
	FieldIsDouble:  {"is_double", "isDouble"},
	FieldRegion:    {"region", "Region", "area", "market"},
	FieldFrequency: {"frequency", "Frequency", "freq"},
}

// substringFor overrides the needle used in the last-resort substring scan
// where the canonical name itself would be too narrow.
var substringFor = map[string]string{
	FieldCategory: "category",
	FieldIsDouble: "double",
	FieldProgram:  "channel",
}

// Resolve maps a canonical metric name to the key actually present in the
// record. Resolution order: explicit FieldMap entry, then the known
// fallback keys, then a case-insensitive substring match over the record's
// keys. Returns "" when nothing matches.
func Resolve(canonical string, fm model.FieldMap, rec model.SpotRecord) string {
	if key, ok := fm[canonical+"_column"]; ok && key != "" {
		if _, present := rec[key]; present {
			return key
		}
	}

	for _, key := range fallbackKeys[canonical] {
		if _, present := rec[key]; present {
			return key
		}
	}

	needle := canonical
	if s, ok := substringFor[canonical]; ok {
		needle = s
	}
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys) // map order must not decide resolution
	for _, key := range keys {
		if strings.Contains(strings.ToLower(key), needle) {
			return key
		}
	}

	return ""
}

// Resolution is the per-dataset table of canonical name to record key.
// An empty value means the metric is not present in this dataset.
type Resolution map[string]string

// ResolveAll computes the resolution table once from the first non-empty
// record. Key layout is expected to be stable across one dataset; records
// that still miss a resolved key degrade to 0 / "Unknown" at read time.
func ResolveAll(records []model.SpotRecord, fm model.FieldMap) Resolution {
	res := make(Resolution, len(fallbackKeys))

	var sample model.SpotRecord
	for _, rec := range records {
		if len(rec) > 0 {
			sample = rec
			break
		}
	}
	if sample == nil {
		return res
	}

	for canonical := range fallbackKeys {
		res[canonical] = Resolve(canonical, fm, sample)
	}
	return res
}

// NumberAt reads a resolved numeric metric from a record, degrading to 0
// when the metric or the key is absent.
func NumberAt(rec model.SpotRecord, res Resolution, canonical string) float64 {
	key := res[canonical]
	if key == "" {
		return 0
	}
	return Normalize(rec[key])
}

// LabelAt reads a resolved categorical metric, degrading to "Unknown" when
// absent or blank.
func LabelAt(rec model.SpotRecord, res Resolution, canonical string) string {
	key := res[canonical]
	if key == "" {
		return "Unknown"
	}
	s := stringValue(rec[key])
	if s == "" {
		return "Unknown"
	}
	return s
}

// rawLabelAt is LabelAt without the "Unknown" default, for filter matching
// where a missing value must simply fail the criterion.
func rawLabelAt(rec model.SpotRecord, res Resolution, canonical string) string {
	key := res[canonical]
	if key == "" {
		return ""
	}
	return stringValue(rec[key])
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
