package repositories

import (
	"context"
	"lane-analytics-service/internal/domain"
	"sync/atomic"
)

// In-memory AggregateSource for tests: serves fixed rows and counts calls
// so cache behavior (memoization, single-flight) can be asserted.
type MockAggregateSource struct {
	Rows []domain.LaneAggregate
	Err  error

	calls atomic.Int64
}

func NewMockAggregateSource(rows []domain.LaneAggregate) *MockAggregateSource {
	return &MockAggregateSource{Rows: rows}
}

func (m *MockAggregateSource) FetchLaneAggregates(ctx context.Context) ([]domain.LaneAggregate, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]domain.LaneAggregate(nil), m.Rows...), nil
}

// Calls reports how many times the source was queried.
func (m *MockAggregateSource) Calls() int64 {
	return m.calls.Load()
}
