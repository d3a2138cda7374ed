package ports

import (
	"context"
	"lane-analytics-service/internal/domain"
)

// Port: optional shared store for the derived lane dataset, letting multiple
// replicas reuse one derivation instead of each querying the shipment store.
type LaneSnapshotStore interface {
	// Get returns the stored dataset; ok is false when no snapshot exists.
	Get(ctx context.Context) (lanes []domain.LaneMetrics, ok bool, err error)
	// Put stores the dataset, replacing any previous snapshot.
	Put(ctx context.Context, lanes []domain.LaneMetrics) error
	// Delete removes the snapshot so the next populate re-derives.
	Delete(ctx context.Context) error
}
