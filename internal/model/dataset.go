package model

import "time"

// Dataset describes one stored spotlist upload.
type Dataset struct {
	ID         string    `json:"id"`
	ReportType string    `json:"report_type"`
	FieldMap   FieldMap  `json:"field_map"`
	SpotCount  int       `json:"spot_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
