package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spotlist-analytics-service/internal/model"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) CreateDataset(ctx context.Context, ds model.Dataset) error {
	args := m.Called(ctx, ds)
	return args.Error(0)
}

func (m *Repository) InsertSpots(ctx context.Context, spots []model.StoredSpot) error {
	args := m.Called(ctx, spots)
	return args.Error(0)
}

func (m *Repository) FetchDataset(ctx context.Context, id string) (model.Dataset, []model.SpotRecord, error) {
	args := m.Called(ctx, id)
	var records []model.SpotRecord
	if v := args.Get(1); v != nil {
		records = v.([]model.SpotRecord)
	}
	return args.Get(0).(model.Dataset), records, args.Error(2)
}
