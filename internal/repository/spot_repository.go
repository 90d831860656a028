package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	json "github.com/goccy/go-json"

	"spotlist-analytics-service/internal/model"
)

// ErrDatasetNotFound is returned when a dataset id has no row.
var ErrDatasetNotFound = errors.New("dataset not found")

// SpotRepository defines database operations for stored spotlists.
type SpotRepository interface {
	// CreateDataset registers one upload.
	CreateDataset(ctx context.Context, ds model.Dataset) error

	// InsertSpots appends spot rows in one ClickHouse batch.
	InsertSpots(ctx context.Context, spots []model.StoredSpot) error

	// FetchDataset loads a dataset header and its records, in upload order.
	FetchDataset(ctx context.Context, id string) (model.Dataset, []model.SpotRecord, error)
}

type spotRepository struct {
	conn clickhouse.Conn
}

// NewSpotRepository creates a SpotRepository backed by ClickHouse.
func NewSpotRepository(conn clickhouse.Conn) SpotRepository {
	return &spotRepository{conn: conn}
}

const insertDatasetQuery = `
	INSERT INTO datasets (id, report_type, field_map, spot_count, uploaded_at)
	VALUES (?, ?, ?, ?, ?)
`

func (r *spotRepository) CreateDataset(ctx context.Context, ds model.Dataset) error {
	fieldMap, err := marshalFieldMap(ds.FieldMap)
	if err != nil {
		return err
	}

	return r.conn.Exec(ctx, insertDatasetQuery,
		ds.ID,
		ds.ReportType,
		fieldMap,
		uint32(ds.SpotCount),
		ds.UploadedAt,
	)
}

const insertSpotsQuery = `
	INSERT INTO spots (dataset_id, seq, channel, daypart, air_date, cost, xrp, is_double, fields)
`

func (r *spotRepository) InsertSpots(ctx context.Context, spots []model.StoredSpot) error {
	if len(spots) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSpotsQuery)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, spot := range spots {
		fields, err := json.Marshal(spot.Fields)
		if err != nil {
			return fmt.Errorf("marshal spot fields: %w", err)
		}

		if err := batch.Append(
			spot.DatasetID,
			spot.Seq,
			spot.Channel,
			spot.Daypart,
			spot.AirDate,
			spot.Cost,
			spot.XRP,
			boolToUInt8(spot.IsDouble),
			string(fields),
		); err != nil {
			return fmt.Errorf("append spot: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

const selectDatasetQuery = `
	SELECT report_type, field_map, spot_count, uploaded_at
	FROM datasets
	WHERE id = ?
	LIMIT 1
`

const selectSpotsQuery = `
	SELECT fields
	FROM spots
	WHERE dataset_id = ?
	ORDER BY seq
`

func (r *spotRepository) FetchDataset(ctx context.Context, id string) (model.Dataset, []model.SpotRecord, error) {
	rows, err := r.conn.Query(ctx, selectDatasetQuery, id)
	if err != nil {
		return model.Dataset{}, nil, fmt.Errorf("query dataset: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return model.Dataset{}, nil, ErrDatasetNotFound
	}

	ds := model.Dataset{ID: id}
	var (
		fieldMapJSON string
		spotCount    uint32
	)
	if err := rows.Scan(&ds.ReportType, &fieldMapJSON, &spotCount, &ds.UploadedAt); err != nil {
		return model.Dataset{}, nil, fmt.Errorf("scan dataset: %w", err)
	}
	ds.SpotCount = int(spotCount)
	if fieldMapJSON != "" {
		if err := json.Unmarshal([]byte(fieldMapJSON), &ds.FieldMap); err != nil {
			return model.Dataset{}, nil, fmt.Errorf("unmarshal field map: %w", err)
		}
	}

	spotRows, err := r.conn.Query(ctx, selectSpotsQuery, id)
	if err != nil {
		return model.Dataset{}, nil, fmt.Errorf("query spots: %w", err)
	}
	defer spotRows.Close()

	records := make([]model.SpotRecord, 0, ds.SpotCount)
	for spotRows.Next() {
		var fields string
		if err := spotRows.Scan(&fields); err != nil {
			return model.Dataset{}, nil, fmt.Errorf("scan spot: %w", err)
		}
		var rec model.SpotRecord
		if err := json.Unmarshal([]byte(fields), &rec); err != nil {
			return model.Dataset{}, nil, fmt.Errorf("unmarshal spot fields: %w", err)
		}
		records = append(records, rec)
	}
	if err := spotRows.Err(); err != nil {
		return model.Dataset{}, nil, fmt.Errorf("iterate spots: %w", err)
	}

	return ds, records, nil
}

func marshalFieldMap(fm model.FieldMap) (string, error) {
	if fm == nil {
		return "{}", nil
	}
	b, err := json.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshal field map: %w", err)
	}
	return string(b), nil
}

func boolToUInt8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
