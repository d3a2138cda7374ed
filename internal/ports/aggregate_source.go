package ports

import (
	"context"
	"lane-analytics-service/internal/domain"
)

// Port: a boundary for the store that aggregates raw shipment rows.
type AggregateSource interface {
	// Return one aggregate row per distinct (origin, destination) pair:
	// row count, mean(actual - goal transit days), variance of actual
	// transit days, and early/on-time/late outcome counts.
	FetchLaneAggregates(ctx context.Context) ([]domain.LaneAggregate, error)
}
