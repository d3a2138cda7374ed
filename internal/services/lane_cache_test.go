package services

import (
	"context"
	"sync"
	"testing"

	"lane-analytics-service/internal/adapters/lookup"
	"lane-analytics-service/internal/adapters/repositories"
	"lane-analytics-service/internal/domain"
)

func TestLaneCachePopulatesOnce(t *testing.T) {
	source := repositories.NewMockAggregateSource([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
	})
	cache := NewLaneCache(source, lookup.NewStaticLocationResolver(), nil)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		lanes, err := cache.GetLanes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lanes) != 1 {
			t.Fatalf("expected 1 lane, got %d", len(lanes))
		}
	}

	if got := source.Calls(); got != 1 {
		t.Fatalf("store queried %d times, want 1", got)
	}
}

func TestLaneCacheDerivesLane(t *testing.T) {
	source := repositories.NewMockAggregateSource([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
	})
	cache := NewLaneCache(source, lookup.NewStaticLocationResolver(), nil)

	lanes, err := cache.GetLanes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := lanes[0]
	if l.Route != "DFW→TUS" {
		t.Fatalf("route = %q, want DFW→TUS", l.Route)
	}
	if l.EarlyRate != 0.4 || l.OnTimeRate != 0.55 || l.LateRate != 0.05 {
		t.Fatalf("rates = (%v, %v, %v), want (0.4, 0.55, 0.05)", l.EarlyRate, l.OnTimeRate, l.LateRate)
	}
	if l.ClusterID != 1 || l.ClusterName != ClusterEarlyStable {
		t.Fatalf("cluster = (%d, %q), want (1, %q)", l.ClusterID, l.ClusterName, ClusterEarlyStable)
	}
}

func TestLaneCacheConcurrentFirstReadersShareOnePopulation(t *testing.T) {
	source := repositories.NewMockAggregateSource([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
	})
	cache := NewLaneCache(source, lookup.NewStaticLocationResolver(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.GetLanes(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := source.Calls(); got != 1 {
		t.Fatalf("store queried %d times under concurrency, want 1", got)
	}
}

func TestLaneCacheInvalidateForcesRefetch(t *testing.T) {
	source := repositories.NewMockAggregateSource([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
	})
	cache := NewLaneCache(source, lookup.NewStaticLocationResolver(), nil)

	ctx := context.Background()
	if _, err := cache.GetLanes(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := cache.GetLanes(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := source.Calls(); got != 2 {
		t.Fatalf("store queried %d times, want 2 (one per population)", got)
	}
}

// gatedAggregateSource snapshots its rows, then blocks each fetch until
// released, so a test can overlap a population with other cache operations.
type gatedAggregateSource struct {
	mu      sync.Mutex
	rows    []domain.LaneAggregate
	started chan struct{}
	release chan struct{}
}

func (g *gatedAggregateSource) FetchLaneAggregates(ctx context.Context) ([]domain.LaneAggregate, error) {
	g.mu.Lock()
	rows := append([]domain.LaneAggregate(nil), g.rows...)
	g.mu.Unlock()

	g.started <- struct{}{}
	<-g.release
	return rows, nil
}

func (g *gatedAggregateSource) setRows(rows []domain.LaneAggregate) {
	g.mu.Lock()
	g.rows = rows
	g.mu.Unlock()
}

func TestLaneCacheInvalidateDuringPopulationDiscardsStaleResult(t *testing.T) {
	source := &gatedAggregateSource{
		rows: []domain.LaneAggregate{
			{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
		},
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	cache := NewLaneCache(source, lookup.NewStaticLocationResolver(), nil)
	ctx := context.Background()

	firstDone := make(chan error, 1)
	go func() {
		_, err := cache.GetLanes(ctx)
		firstDone <- err
	}()

	// With the population in flight over the old rows, invalidate and land
	// the re-ingested data.
	<-source.started
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	source.setRows([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 250, AvgDelay: 0.1, TransitVariance: 1.2, EarlyCount: 50, OnTimeCount: 150, LateCount: 50},
	})
	close(source.release)

	if err := <-firstDone; err != nil {
		t.Fatalf("in-flight read: %v", err)
	}

	// The finished population must not have repopulated the slot: reads
	// after the invalidation see only the re-ingested dataset.
	lanes, err := cache.GetLanes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lanes) != 1 || lanes[0].Volume != 250 {
		t.Fatalf("read after invalidation = %+v, want the re-ingested lane with volume 250", lanes)
	}
}

func TestLaneCacheReturnsCopies(t *testing.T) {
	source := repositories.NewMockAggregateSource([]domain.LaneAggregate{
		{OriginZip: "750", DestZip: "857", Volume: 100, AvgDelay: -0.5, TransitVariance: 1.0, EarlyCount: 40, OnTimeCount: 55, LateCount: 5},
		{OriginZip: "606", DestZip: "100", Volume: 150, AvgDelay: 0.1, TransitVariance: 4.2, EarlyCount: 30, OnTimeCount: 60, LateCount: 60},
	})
	cache := NewLaneCache(source, lookup.NewStaticLocationResolver(), nil)

	ctx := context.Background()
	first, err := cache.GetLanes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].Volume = -1

	second, err := cache.GetLanes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Volume != 100 {
		t.Fatalf("cached lane mutated through caller's slice: volume = %d", second[0].Volume)
	}
}
