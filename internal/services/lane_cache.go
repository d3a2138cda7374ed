package services

import (
	"context"
	"fmt"
	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/platform/obs"
	"lane-analytics-service/internal/ports"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LaneCache holds the derived, classified lane list for the life of the
// process. It populates at most once unless Invalidate is called.
//
// Readers take the read lock on the common (populated) path. Concurrent
// misses collapse into a single in-flight population that all waiters share,
// so the shipment store sees one aggregate query per population.
type LaneCache struct {
	source    ports.AggregateSource
	locations ports.LocationResolver
	snapshot  ports.LaneSnapshotStore // optional; nil disables the shared tier

	mu        sync.RWMutex
	lanes     []domain.LaneMetrics
	populated bool
	gen       uint64 // bumped by Invalidate; a population only commits its own generation

	group singleflight.Group
}

func NewLaneCache(source ports.AggregateSource, locations ports.LocationResolver, snapshot ports.LaneSnapshotStore) *LaneCache {
	return &LaneCache{
		source:    source,
		locations: locations,
		snapshot:  snapshot,
	}
}

// GetLanes returns a copy of the cached lane list, deriving it on first use.
// Callers may sort and truncate the returned slice freely.
func (c *LaneCache) GetLanes(ctx context.Context) ([]domain.LaneMetrics, error) {
	c.mu.RLock()
	if c.populated {
		out := append([]domain.LaneMetrics(nil), c.lanes...)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	// Single-flight: concurrent first readers block on one population
	// instead of issuing redundant store queries.
	v, err, _ := c.group.Do("lanes", func() (any, error) {
		c.mu.RLock()
		if c.populated {
			lanes := c.lanes
			c.mu.RUnlock()
			return lanes, nil
		}
		gen := c.gen
		c.mu.RUnlock()

		lanes, fromStore, err := c.populate(ctx)
		if err != nil {
			return nil, err
		}

		// An invalidation that raced this population means the result may
		// predate newly ingested data: serve it to the waiters already in
		// flight, but leave the slot empty so the next read re-derives.
		c.mu.Lock()
		current := c.gen == gen
		if current {
			c.lanes = lanes
			c.populated = true
		}
		c.mu.Unlock()

		if current && fromStore && c.snapshot != nil {
			if snapErr := c.snapshot.Put(ctx, lanes); snapErr != nil {
				log.Printf("lane snapshot put failed: %v", snapErr)
			}
		}

		return lanes, nil
	})
	if err != nil {
		return nil, err
	}

	lanes := v.([]domain.LaneMetrics)
	return append([]domain.LaneMetrics(nil), lanes...), nil
}

// Invalidate drops the cached dataset so the next read re-derives it.
// The shared snapshot (if configured) is deleted as well; a snapshot delete
// failure is returned so operators notice stale replicas.
func (c *LaneCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.lanes = nil
	c.populated = false
	c.gen++
	c.mu.Unlock()

	// Detach any in-flight population so later readers start a fresh one;
	// the generation check keeps its result out of the slot and the snapshot.
	c.group.Forget("lanes")

	if c.snapshot != nil {
		if err := c.snapshot.Delete(ctx); err != nil {
			return fmt.Errorf("invalidate lanes: delete snapshot: %w", err)
		}
	}

	return nil
}

// populate builds the derived dataset: shared snapshot first when
// configured, otherwise the store's aggregate query followed by rate
// derivation and cluster classification per row. fromStore reports whether
// the caller needs to write the snapshot back.
func (c *LaneCache) populate(ctx context.Context) (_ []domain.LaneMetrics, fromStore bool, err error) {
	defer obs.Time(ctx, "lanes.cache.populate")(&err)

	if c.snapshot != nil {
		lanes, ok, snapErr := c.snapshot.Get(ctx)
		if snapErr != nil {
			// Snapshot degradation must not fail reads; fall through to the store.
			log.Printf("lane snapshot get failed, querying store: %v", snapErr)
		} else if ok {
			return lanes, false, nil
		}
	}

	aggs, err := c.source.FetchLaneAggregates(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("populate lanes: fetch aggregates: %w", err)
	}

	lanes := make([]domain.LaneMetrics, 0, len(aggs))
	for _, agg := range aggs {
		lanes = append(lanes, deriveLane(agg, c.locations))
	}

	return lanes, true, nil
}

// deriveLane turns one raw aggregate row into a classified LaneMetrics.
func deriveLane(agg domain.LaneAggregate, locations ports.LocationResolver) domain.LaneMetrics {
	early, onTime, late := DeriveRates(agg)

	id, name := Classify(ClassifierInput{
		AvgDelay:        agg.AvgDelay,
		TransitVariance: agg.TransitVariance,
		EarlyRate:       early,
		OnTimeRate:      onTime,
		LateRate:        late,
		Volume:          agg.Volume,
	})

	return domain.LaneMetrics{
		OriginZip:       agg.OriginZip,
		DestZip:         agg.DestZip,
		Route:           locations.ShortName(agg.OriginZip) + "→" + locations.ShortName(agg.DestZip),
		Volume:          agg.Volume,
		AvgDelay:        agg.AvgDelay,
		TransitVariance: agg.TransitVariance,
		EarlyRate:       early,
		OnTimeRate:      onTime,
		LateRate:        late,
		ClusterID:       id,
		ClusterName:     name,
	}
}
