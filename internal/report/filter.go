package report

import (
	"time"

	"spotlist-analytics-service/internal/model"
)

// ApplyFilter narrows records to those matching every active criterion of
// the spec. A record is retained iff all non-empty criteria match. The
// whole spec is evaluated in a single pass with one combined predicate, so
// repeated applications of the same spec are idempotent and criteria order
// cannot matter. Returns the input slice untouched when the spec is empty.
func ApplyFilter(records []model.SpotRecord, spec model.FilterSpec, fm model.FieldMap) []model.SpotRecord {
	if spec.Empty() || len(records) == 0 {
		return records
	}

	res := ResolveAll(records, fm)

	channels := stringSet(spec.Channels)
	dayparts := stringSet(spec.Dayparts)
	categories := stringSet(spec.Categories)
	brands := stringSet(spec.Brands)

	// Duration bounds only apply when the dataset exposes a duration field
	// at all; otherwise they would filter everything out.
	durationBounds := (spec.MinDuration != nil || spec.MaxDuration != nil) && res[FieldDuration] != ""

	out := make([]model.SpotRecord, 0, len(records))
	for _, rec := range records {
		if len(channels) > 0 {
			if _, ok := channels[rawLabelAt(rec, res, FieldProgram)]; !ok {
				continue
			}
		}
		if spec.Dates.Start != "" || spec.Dates.End != "" {
			day := RecordDay(rec, res)
			if day == "" {
				continue
			}
			// ISO-8601 dates sort lexicographically, so string compare is
			// a correct inclusive range check.
			if spec.Dates.Start != "" && day < spec.Dates.Start {
				continue
			}
			if spec.Dates.End != "" && day > spec.Dates.End {
				continue
			}
		}
		if len(dayparts) > 0 {
			if _, ok := dayparts[rawLabelAt(rec, res, FieldDaypart)]; !ok {
				continue
			}
		}
		if len(categories) > 0 {
			if _, ok := categories[rawLabelAt(rec, res, FieldCategory)]; !ok {
				continue
			}
		}
		if len(brands) > 0 {
			if _, ok := brands[rawLabelAt(rec, res, FieldBrand)]; !ok {
				continue
			}
		}
		if spec.Placement != "" && rawLabelAt(rec, res, FieldPlacement) != spec.Placement {
			continue
		}
		if spec.MinSpend != nil || spec.MaxSpend != nil {
			spend := NumberAt(rec, res, FieldCost)
			if spec.MinSpend != nil && spend < *spec.MinSpend {
				continue
			}
			if spec.MaxSpend != nil && spend > *spec.MaxSpend {
				continue
			}
		}
		if durationBounds {
			dur := NumberAt(rec, res, FieldDuration)
			if spec.MinDuration != nil && dur < *spec.MinDuration {
				continue
			}
			if spec.MaxDuration != nil && dur > *spec.MaxDuration {
				continue
			}
		}

		out = append(out, rec)
	}
	return out
}

// RecordDay extracts the record's day as YYYY-MM-DD. Date fields arrive
// either as ISO strings (possibly with a time part) or as unix-second
// timestamps.
func RecordDay(rec model.SpotRecord, res Resolution) string {
	key := res[FieldDate]
	if key == "" {
		return ""
	}
	switch v := rec[key].(type) {
	case string:
		if len(v) >= 10 {
			return v[:10]
		}
		return ""
	case float64:
		if v <= 0 {
			return ""
		}
		return time.Unix(int64(v), 0).UTC().Format("2006-01-02")
	case int64:
		if v <= 0 {
			return ""
		}
		return time.Unix(v, 0).UTC().Format("2006-01-02")
	default:
		return ""
	}
}

func stringSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
