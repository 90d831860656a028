package model

// SpotRecord is one ad-airing event. Upstream sources do not agree on a
// schema, so a record is an open mapping from field name to value; values
// arrive as strings, numbers or booleans depending on the exporter.
type SpotRecord map[string]any

// FieldMap maps a canonical metric name to the actual key used by one data
// source, e.g. {"cost_column": "Spend"}. Any entry may be absent, in which
// case the resolver falls back to a per-metric list of known key names.
type FieldMap map[string]string

// WindowSummary carries externally computed double-booking totals for one
// detection window (30/60/90/120 minutes). It is consumed read-only.
type WindowSummary struct {
	WindowMinutes int          `json:"window_minutes"`
	All           WindowTotals `json:"all"`
}

// WindowTotals holds the double-booking counters of a single window.
type WindowTotals struct {
	DoubleSpots  int     `json:"double_spots"`
	PercentSpots float64 `json:"percent_spots"`
	DoubleCost   float64 `json:"double_cost"`
	PercentCost  float64 `json:"percent_cost"`
}

// StoredSpot is the persisted form of one SpotRecord: a handful of
// denormalized columns for querying plus the full record as JSON.
type StoredSpot struct {
	DatasetID string
	Seq       uint32
	Channel   string
	Daypart   string
	AirDate   string
	Cost      float64
	XRP       float64
	IsDouble  bool
	Fields    SpotRecord
}
