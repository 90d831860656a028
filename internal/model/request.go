package model

// AnalyzeRequest is the payload consumed by the analysis endpoint. The
// double-booking detection that fills `metrics` and `window_summaries` runs
// in an upstream service; this service only aggregates and derives.
type AnalyzeRequest struct {
	Metrics         map[string]any  `json:"metrics,omitempty"`
	WindowSummaries []WindowSummary `json:"window_summaries,omitempty"`
	Data            []SpotRecord    `json:"data"`
	FieldMap        FieldMap        `json:"field_map,omitempty"`
	Metadata        *ReportMetadata `json:"metadata,omitempty"`
	Filters         *FilterSpec     `json:"filters,omitempty"`
}

// ReportMetadata optionally pins the report type instead of letting the
// detector infer it from record keys.
type ReportMetadata struct {
	ReportType string `json:"report_type,omitempty"`
	Source     string `json:"source,omitempty"`
}

// AnalyzeMeta describes what was analyzed and how.
type AnalyzeMeta struct {
	ReportType      string `json:"report_type"`
	DatasetID       string `json:"dataset_id,omitempty"`
	TotalRecords    int    `json:"total_records"`
	FilteredRecords int    `json:"filtered_records"`
	Filtered        bool   `json:"filtered"`
	GeneratedAt     string `json:"generated_at"`
}

// AnalyzeResponse is the render-ready result of one analysis run. Exactly
// the sections matching the report type are populated.
type AnalyzeResponse struct {
	Meta           AnalyzeMeta           `json:"meta"`
	National       *NationalReport       `json:"national,omitempty"`
	Daypart        *GroupedReport        `json:"daypart_analysis,omitempty"`
	Channels       *GroupedReport        `json:"channel_performance,omitempty"`
	Categories     *GroupedReport        `json:"category_analysis,omitempty"`
	Regional       *GroupedReport        `json:"regional_analysis,omitempty"`
	TopTen         *TopTenReport         `json:"top_ten,omitempty"`
	ReachFrequency *ReachFrequencyReport `json:"reach_frequency,omitempty"`
	WindowRisks    []WindowRisk          `json:"window_risks,omitempty"`
}

// StoreResult acknowledges an accepted dataset upload.
type StoreResult struct {
	DatasetID string `json:"dataset_id"`
	Spots     int    `json:"spots"`
	Status    string `json:"status"`
}
