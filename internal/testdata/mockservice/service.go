package mockservice

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spotlist-analytics-service/internal/model"
)

type Service struct {
	mock.Mock
}

func (m *Service) Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.AnalyzeResponse), args.Error(1)
}

func (m *Service) Store(ctx context.Context, req model.AnalyzeRequest) (model.StoreResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.StoreResult), args.Error(1)
}

func (m *Service) AnalyzeStored(ctx context.Context, datasetID string, reportType string, filters *model.FilterSpec) (model.AnalyzeResponse, error) {
	args := m.Called(ctx, datasetID, reportType, filters)
	return args.Get(0).(model.AnalyzeResponse), args.Error(1)
}
