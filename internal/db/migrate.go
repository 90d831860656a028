package db

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// RunMigrations ensures required tables exist. This keeps the service
// self-contained without an external migration step.
func RunMigrations(ctx context.Context, conn clickhouse.Conn) error {
	err := conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS datasets
(
	id              String,
	report_type     String,
	field_map       String DEFAULT '{}',
	spot_count      UInt32,
	uploaded_at     DateTime('UTC')
)
ENGINE = ReplacingMergeTree
ORDER BY id
SETTINGS index_granularity = 8192;
`)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	err = conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS spots
(
	dataset_id      String,
	seq             UInt32,
	channel         String,
	daypart         String,
	air_date        String,
	cost            Float64,
	xrp             Float64,
	is_double       UInt8,
	fields          String DEFAULT '{}',
	ingested_at     DateTime DEFAULT now()
)
ENGINE = MergeTree
PARTITION BY dataset_id
ORDER BY (dataset_id, seq)
SETTINGS index_granularity = 8192;
`)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
