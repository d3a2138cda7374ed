package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const defaultSnapshotKey = "lanes:derived:v1"

// RedisLaneSnapshot is a Redis-backed implementation of the
// LaneSnapshotStore port. The whole derived dataset is stored as one JSON
// value under a single key, so replicas behind the same Redis share one
// derivation instead of each hitting the shipment store.
type RedisLaneSnapshot struct {
	Client *redis.Client
	Key    string
}

func NewRedisLaneSnapshot(client *redis.Client) *RedisLaneSnapshot {
	return &RedisLaneSnapshot{
		Client: client,
		Key:    defaultSnapshotKey,
	}
}

// Get returns the stored dataset; ok is false when no snapshot exists.
func (s *RedisLaneSnapshot) Get(ctx context.Context) (_ []domain.LaneMetrics, _ bool, err error) {
	defer obs.Time(ctx, "lanes.snapshot.Get")(&err)

	if s.Client == nil {
		return nil, false, errors.New("lane snapshot: client is nil")
	}

	raw, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get lane snapshot: %w", err)
	}

	var lanes []domain.LaneMetrics
	if err := json.Unmarshal(raw, &lanes); err != nil {
		return nil, false, fmt.Errorf("get lane snapshot: decode: %w", err)
	}

	return lanes, true, nil
}

// Put stores the dataset, replacing any previous snapshot. No TTL: the
// dataset only changes through explicit invalidation after re-ingestion.
func (s *RedisLaneSnapshot) Put(ctx context.Context, lanes []domain.LaneMetrics) error {
	if s.Client == nil {
		return errors.New("lane snapshot: client is nil")
	}

	raw, err := json.Marshal(lanes)
	if err != nil {
		return fmt.Errorf("put lane snapshot: encode: %w", err)
	}

	if err := s.Client.Set(ctx, s.Key, raw, 0).Err(); err != nil {
		return fmt.Errorf("put lane snapshot: %w", err)
	}

	return nil
}

// Delete removes the snapshot so the next populate re-derives.
func (s *RedisLaneSnapshot) Delete(ctx context.Context) error {
	if s.Client == nil {
		return errors.New("lane snapshot: client is nil")
	}

	if err := s.Client.Del(ctx, s.Key).Err(); err != nil {
		return fmt.Errorf("delete lane snapshot: %w", err)
	}

	return nil
}
