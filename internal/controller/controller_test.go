package controller

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"spotlist-analytics-service/internal/model"
	"spotlist-analytics-service/internal/service"
	mockservice "spotlist-analytics-service/internal/testdata/mockservice"
)

type ControllerTestSuite struct {
	suite.Suite

	app     *fiber.App
	service *mockservice.Service
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.service = &mockservice.Service{}
	ctrl := NewReportController(s.service)
	s.app = fiber.New()
	s.app.Post("/reports/analyze", ctrl.Analyze)
	s.app.Post("/datasets", ctrl.StoreDataset)
	s.app.Get("/datasets/:id/report", ctrl.GetStoredReport)
}

func (s *ControllerTestSuite) postJSON(path string, body any) *http.Response {
	raw, err := json.Marshal(body)
	require.NoError(s.T(), err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(s.T(), err)
	return resp
}

func (s *ControllerTestSuite) TestAnalyze_Success() {
	expected := model.AnalyzeResponse{
		Meta: model.AnalyzeMeta{ReportType: "spotlist", TotalRecords: 1, FilteredRecords: 1},
	}
	s.service.On("Analyze", mock.Anything, mock.MatchedBy(func(req model.AnalyzeRequest) bool {
		return len(req.Data) == 1
	})).Return(expected, nil)

	resp := s.postJSON("/reports/analyze", model.AnalyzeRequest{
		Data: []model.SpotRecord{{"channel": "RTL", "cost": "100"}},
	})

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var got model.AnalyzeResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(s.T(), json.Unmarshal(raw, &got))
	require.Equal(s.T(), "spotlist", got.Meta.ReportType)
}

func (s *ControllerTestSuite) TestAnalyze_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/reports/analyze", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := s.app.Test(req, -1)
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *ControllerTestSuite) TestAnalyze_ValidationErrorMapsTo400() {
	s.service.On("Analyze", mock.Anything, mock.Anything).
		Return(model.AnalyzeResponse{}, &service.ValidationError{Message: "unsupported report type"})

	resp := s.postJSON("/reports/analyze", model.AnalyzeRequest{})

	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *ControllerTestSuite) TestAnalyze_InternalErrorMapsTo500() {
	s.service.On("Analyze", mock.Anything, mock.Anything).
		Return(model.AnalyzeResponse{}, context.DeadlineExceeded)

	resp := s.postJSON("/reports/analyze", model.AnalyzeRequest{})

	require.Equal(s.T(), http.StatusInternalServerError, resp.StatusCode)
}

func (s *ControllerTestSuite) TestStoreDataset_Accepted() {
	s.service.On("Store", mock.Anything, mock.Anything).
		Return(model.StoreResult{DatasetID: "ds-1", Spots: 2, Status: "accepted"}, nil)

	resp := s.postJSON("/datasets", model.AnalyzeRequest{
		Data: []model.SpotRecord{{"cost": "1"}, {"cost": "2"}},
	})

	require.Equal(s.T(), http.StatusAccepted, resp.StatusCode)

	var got model.StoreResult
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(s.T(), json.Unmarshal(raw, &got))
	require.Equal(s.T(), "ds-1", got.DatasetID)
}

func (s *ControllerTestSuite) TestGetStoredReport_PassesFilters() {
	filterMatcher := mock.MatchedBy(func(f *model.FilterSpec) bool {
		return f != nil &&
			len(f.Channels) == 2 && f.Channels[0] == "RTL" &&
			f.Dates.Start == "2025-03-01" &&
			f.MinSpend != nil && *f.MinSpend == 100
	})
	s.service.On("AnalyzeStored", mock.Anything, "ds-1", "daypartAnalysis", filterMatcher).
		Return(model.AnalyzeResponse{Meta: model.AnalyzeMeta{DatasetID: "ds-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/datasets/ds-1/report?type=daypartAnalysis&channels=RTL,SAT1&date_start=2025-03-01&min_spend=100", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	s.service.AssertExpectations(s.T())
}

func (s *ControllerTestSuite) TestGetStoredReport_NoFiltersMeansNilSpec() {
	s.service.On("AnalyzeStored", mock.Anything, "ds-1", "", (*model.FilterSpec)(nil)).
		Return(model.AnalyzeResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/datasets/ds-1/report", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	s.service.AssertExpectations(s.T())
}

func (s *ControllerTestSuite) TestGetStoredReport_InvalidSpendParam() {
	req := httptest.NewRequest(http.MethodGet, "/datasets/ds-1/report?min_spend=abc", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *ControllerTestSuite) TestGetStoredReport_NotFoundMapsTo404() {
	s.service.On("AnalyzeStored", mock.Anything, "nope", "", (*model.FilterSpec)(nil)).
		Return(model.AnalyzeResponse{}, &service.NotFoundError{Message: "dataset not found"})

	req := httptest.NewRequest(http.MethodGet, "/datasets/nope/report", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}
