package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/platform/obs"
)

// Postgres-backed implementation of the AggregateSource port.
// Grouping and statistical aggregation run in the database; the engine only
// sees one row per (origin, destination) pair.
type PostgresAggregateSource struct{ DB *sql.DB }

func NewPostgresAggregateSource(db *sql.DB) *PostgresAggregateSource {
	return &PostgresAggregateSource{DB: db}
}

// FetchLaneAggregates returns one aggregate row per distinct lane.
// VAR_POP is coalesced to 0 for single-shipment lanes.
func (s *PostgresAggregateSource) FetchLaneAggregates(ctx context.Context) (_ []domain.LaneAggregate, err error) {
	defer obs.Time(ctx, "shipments.FetchLaneAggregates")(&err)

	if s.DB == nil {
		return nil, errors.New("aggregate source: DB is nil")
	}

	query := `
	SELECT
		origin_zip3,
		dest_zip3,
		COUNT(*) AS volume,
		AVG(actual_transit_days - goal_transit_days) AS avg_delay,
		COALESCE(VAR_POP(actual_transit_days), 0) AS transit_variance,
		COUNT(*) FILTER (WHERE otd = 'Early') AS early_count,
		COUNT(*) FILTER (WHERE otd = 'OnTime') AS ontime_count,
		COUNT(*) FILTER (WHERE otd = 'Late') AS late_count
	FROM shipments
	GROUP BY origin_zip3, dest_zip3
	ORDER BY origin_zip3, dest_zip3;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch lane aggregates: query shipments table: %w", err)
	}
	defer rows.Close()

	aggs := make([]domain.LaneAggregate, 0, 256)
	for rows.Next() {
		var a domain.LaneAggregate
		err := rows.Scan(
			&a.OriginZip,
			&a.DestZip,
			&a.Volume,
			&a.AvgDelay,
			&a.TransitVariance,
			&a.EarlyCount,
			&a.OnTimeCount,
			&a.LateCount,
		)
		if err != nil {
			return nil, fmt.Errorf("fetch lane aggregates: scan row: %w", err)
		}
		aggs = append(aggs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch lane aggregates: row iteration: %w", err)
	}

	return aggs, nil
}
