package model

// DateRange bounds a filter by ISO-8601 dates (YYYY-MM-DD), inclusive on
// both ends. Blank means unbounded on that side.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FilterSpec is an immutable snapshot of the active selection criteria.
// An empty set or blank scalar means "no constraint" on that dimension.
// Consumers replace the whole spec on every change; it is never merged
// field by field.
type FilterSpec struct {
	Channels    []string  `json:"channels,omitempty"`
	Dates       DateRange `json:"dates,omitempty"`
	Dayparts    []string  `json:"dayparts,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Brands      []string  `json:"brands,omitempty"`
	Placement   string    `json:"placement,omitempty"`
	MinSpend    *float64  `json:"min_spend,omitempty"`
	MaxSpend    *float64  `json:"max_spend,omitempty"`
	MinDuration *float64  `json:"min_duration,omitempty"`
	MaxDuration *float64  `json:"max_duration,omitempty"`
}

// Empty reports whether no criterion is active, i.e. applying the spec is a
// no-op.
func (f FilterSpec) Empty() bool {
	return len(f.Channels) == 0 &&
		f.Dates.Start == "" && f.Dates.End == "" &&
		len(f.Dayparts) == 0 &&
		len(f.Categories) == 0 &&
		len(f.Brands) == 0 &&
		f.Placement == "" &&
		f.MinSpend == nil && f.MaxSpend == nil &&
		f.MinDuration == nil && f.MaxDuration == nil
}
