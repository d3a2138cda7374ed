package services

import (
	"context"
	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/ports"
	"sort"
	"strings"
)

// Engine is the lane behavioral analytics core shared by every presentation
// adapter. All view methods are synchronous, side-effect-free transformations
// over the cached lane list; the only external call is the cache's first
// population.
type Engine struct {
	cache     *LaneCache
	locations ports.LocationResolver
	carriers  ports.CarrierResolver
}

func NewEngine(cache *LaneCache, locations ports.LocationResolver, carriers ports.CarrierResolver) *Engine {
	return &Engine{
		cache:     cache,
		locations: locations,
		carriers:  carriers,
	}
}

// Lanes returns the derived lane list in the store's grouping order,
// truncated to limit when limit > 0.
func (e *Engine) Lanes(ctx context.Context, limit int) ([]domain.LaneMetrics, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(lanes) > limit {
		lanes = lanes[:limit]
	}
	return lanes, nil
}

// Invalidate drops the derived dataset so new ingested data becomes visible
// without a process restart.
func (e *Engine) Invalidate(ctx context.Context) error {
	return e.cache.Invalidate(ctx)
}

// laneMatches reports whether the query is a case-insensitive substring of
// the lane's route label, origin code, or destination code.
func laneMatches(l domain.LaneMetrics, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.Route), q) ||
		strings.Contains(strings.ToLower(l.OriginZip), q) ||
		strings.Contains(strings.ToLower(l.DestZip), q)
}

// sortLanesByVolume orders lanes by volume descending with the route label
// as a deterministic tiebreak.
func sortLanesByVolume(lanes []domain.LaneMetrics) {
	sort.Slice(lanes, func(i, j int) bool {
		if lanes[i].Volume != lanes[j].Volume {
			return lanes[i].Volume > lanes[j].Volume
		}
		return lanes[i].Route < lanes[j].Route
	})
}
