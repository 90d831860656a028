package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"spotlist-analytics-service/internal/model"
	"spotlist-analytics-service/internal/report"
	"spotlist-analytics-service/internal/repository"
)

// ValidationError represents user input issues.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError marks lookups of datasets that do not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ReportService wires the analytics pipeline: detect report type, filter,
// aggregate, derive, recommend. Dataset storage runs through the batch
// worker; analysis itself never touches the database.
type ReportService interface {
	Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalyzeResponse, error)
	Store(ctx context.Context, req model.AnalyzeRequest) (model.StoreResult, error)
	AnalyzeStored(ctx context.Context, datasetID string, reportType string, filters *model.FilterSpec) (model.AnalyzeResponse, error)
}

type reportService struct {
	repo   repository.SpotRepository
	worker SpotBatchWorker
	now    func() time.Time
	newID  func() string
}

// NewReportService constructs a reportService.
func NewReportService(repo repository.SpotRepository, worker SpotBatchWorker) ReportService {
	return &reportService{
		repo:   repo,
		worker: worker,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Analyze runs the full pipeline over an uploaded payload. Empty data is
// not an error: the matching report sections come back flagged NoData.
func (s *reportService) Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	reportType, err := s.resolveReportType(req)
	if err != nil {
		return model.AnalyzeResponse{}, err
	}
	if err := validateFilters(req.Filters); err != nil {
		return model.AnalyzeResponse{}, err
	}

	records := req.Data
	filtered := records
	if req.Filters != nil {
		filtered = report.ApplyFilter(records, *req.Filters, req.FieldMap)
	}

	resp := model.AnalyzeResponse{
		Meta: model.AnalyzeMeta{
			ReportType:      string(reportType),
			TotalRecords:    len(records),
			FilteredRecords: len(filtered),
			Filtered:        len(filtered) != len(records),
			GeneratedAt:     s.now().UTC().Format(time.RFC3339),
		},
		WindowRisks: report.AnnotateWindows(req.WindowSummaries),
	}

	switch reportType {
	case report.ReportSpotlist:
		national := report.National(filtered, req.FieldMap)
		channels := report.Channels(filtered, req.FieldMap)
		daypart := report.Daypart(filtered, req.FieldMap)
		resp.National = &national
		resp.Channels = &channels
		resp.Daypart = &daypart
	case report.ReportDaypart:
		daypart := report.Daypart(filtered, req.FieldMap)
		resp.Daypart = &daypart
	case report.ReportTopTen:
		topTen := report.TopTen(filtered, req.FieldMap)
		resp.TopTen = &topTen
	case report.ReportReachFrequency:
		rf := report.ReachFrequency(filtered, req.FieldMap)
		resp.ReachFrequency = &rf
	case report.ReportDeepAnalysis:
		channels := report.Channels(filtered, req.FieldMap)
		regional := report.Regional(filtered, req.FieldMap)
		resp.Channels = &channels
		resp.Regional = &regional
	case report.ReportChannel:
		channels := report.Channels(filtered, req.FieldMap)
		resp.Channels = &channels
	case report.ReportCategory:
		categories := report.Categories(filtered, req.FieldMap)
		resp.Categories = &categories
	case report.ReportRegional:
		regional := report.Regional(filtered, req.FieldMap)
		resp.Regional = &regional
	case report.ReportNational:
		national := report.National(filtered, req.FieldMap)
		resp.National = &national
	}

	return resp, nil
}

// Store assigns a dataset id, registers the dataset synchronously and
// enqueues the spots for batched persistence.
func (s *reportService) Store(ctx context.Context, req model.AnalyzeRequest) (model.StoreResult, error) {
	if len(req.Data) == 0 {
		return model.StoreResult{}, &ValidationError{Message: "data is required"}
	}
	reportType, err := s.resolveReportType(req)
	if err != nil {
		return model.StoreResult{}, err
	}

	ds := model.Dataset{
		ID:         s.newID(),
		ReportType: string(reportType),
		FieldMap:   req.FieldMap,
		SpotCount:  len(req.Data),
		UploadedAt: s.now().UTC(),
	}
	if err := s.repo.CreateDataset(ctx, ds); err != nil {
		return model.StoreResult{}, fmt.Errorf("create dataset: %w", err)
	}

	res := report.ResolveAll(req.Data, req.FieldMap)
	for i, rec := range req.Data {
		spot := model.StoredSpot{
			DatasetID: ds.ID,
			Seq:       uint32(i),
			Channel:   labelOrEmpty(rec, res, report.FieldProgram),
			Daypart:   labelOrEmpty(rec, res, report.FieldDaypart),
			AirDate:   report.RecordDay(rec, res),
			Cost:      report.NumberAt(rec, res, report.FieldCost),
			XRP:       report.NumberAt(rec, res, report.FieldXRP),
			Fields:    rec,
		}
		if key := res[report.FieldIsDouble]; key != "" {
			spot.IsDouble = report.TruthyFlag(rec[key])
		}
		s.worker.Enqueue(spot)
	}

	return model.StoreResult{DatasetID: ds.ID, Spots: ds.SpotCount, Status: "accepted"}, nil
}

// AnalyzeStored re-fetches a stored dataset and re-runs the pipeline with
// fresh filters, so a dataset can be re-analyzed without re-upload.
func (s *reportService) AnalyzeStored(ctx context.Context, datasetID string, reportType string, filters *model.FilterSpec) (model.AnalyzeResponse, error) {
	if datasetID == "" {
		return model.AnalyzeResponse{}, &ValidationError{Message: "dataset id is required"}
	}

	ds, records, err := s.repo.FetchDataset(ctx, datasetID)
	if err != nil {
		if errors.Is(err, repository.ErrDatasetNotFound) {
			return model.AnalyzeResponse{}, &NotFoundError{Message: "dataset not found"}
		}
		return model.AnalyzeResponse{}, fmt.Errorf("fetch dataset: %w", err)
	}

	if reportType == "" {
		reportType = ds.ReportType
	}

	resp, err := s.Analyze(ctx, model.AnalyzeRequest{
		Data:     records,
		FieldMap: ds.FieldMap,
		Metadata: &model.ReportMetadata{ReportType: reportType},
		Filters:  filters,
	})
	if err != nil {
		return model.AnalyzeResponse{}, err
	}

	resp.Meta.DatasetID = ds.ID
	return resp, nil
}

func (s *reportService) resolveReportType(req model.AnalyzeRequest) (report.ReportType, error) {
	var explicit report.ReportType
	if req.Metadata != nil && req.Metadata.ReportType != "" {
		explicit = report.ReportType(req.Metadata.ReportType)
		if !report.KnownReportType(explicit) {
			return "", &ValidationError{Message: fmt.Sprintf("unsupported report type %q", req.Metadata.ReportType)}
		}
	}
	return report.Detect(req.Data, explicit), nil
}

func validateFilters(spec *model.FilterSpec) error {
	if spec == nil {
		return nil
	}
	for _, d := range []string{spec.Dates.Start, spec.Dates.End} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return &ValidationError{Message: fmt.Sprintf("invalid filter date %q, want YYYY-MM-DD", d)}
		}
	}
	if spec.MinSpend != nil && spec.MaxSpend != nil && *spec.MinSpend > *spec.MaxSpend {
		return &ValidationError{Message: "min_spend must not exceed max_spend"}
	}
	if spec.MinDuration != nil && spec.MaxDuration != nil && *spec.MinDuration > *spec.MaxDuration {
		return &ValidationError{Message: "min_duration must not exceed max_duration"}
	}
	return nil
}

func labelOrEmpty(rec model.SpotRecord, res report.Resolution, canonical string) string {
	label := report.LabelAt(rec, res, canonical)
	if label == "Unknown" {
		return ""
	}
	return label
}
