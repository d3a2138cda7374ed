package cache

import (
	"context"
	"testing"

	"lane-analytics-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestSnapshot(t *testing.T) *RedisLaneSnapshot {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLaneSnapshot(client)
}

func TestRedisLaneSnapshotMiss(t *testing.T) {
	snap := newTestSnapshot(t)

	lanes, ok, err := snap.Get(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, lanes)
}

func TestRedisLaneSnapshotRoundTrip(t *testing.T) {
	snap := newTestSnapshot(t)
	ctx := context.Background()

	want := []domain.LaneMetrics{
		{
			OriginZip: "750", DestZip: "857", Route: "DFW→TUS",
			Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0,
			EarlyRate: 0.4, OnTimeRate: 0.55, LateRate: 0.05,
			ClusterID: 1, ClusterName: "Early & Stable",
		},
	}

	require.NoError(t, snap.Put(ctx, want))

	got, ok, err := snap.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestRedisLaneSnapshotDelete(t *testing.T) {
	snap := newTestSnapshot(t)
	ctx := context.Background()

	require.NoError(t, snap.Put(ctx, []domain.LaneMetrics{{OriginZip: "750", DestZip: "857"}}))
	require.NoError(t, snap.Delete(ctx))

	_, ok, err := snap.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisLaneSnapshotNilClient(t *testing.T) {
	snap := &RedisLaneSnapshot{Key: "k"}

	_, _, err := snap.Get(context.Background())
	require.Error(t, err)
	require.Error(t, snap.Put(context.Background(), nil))
	require.Error(t, snap.Delete(context.Background()))
}
