package services

import (
	"context"
	"lane-analytics-service/internal/domain"
	"strings"
)

// LaneProfile finds the first lane matching both query terms: the origin
// query against the origin code or route label, the destination query
// against the destination code or route label (case-insensitive substring).
// A nil result means nothing matched; that is not an error.
func (e *Engine) LaneProfile(ctx context.Context, originQuery, destQuery string) (*domain.LaneMetrics, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return nil, err
	}

	origin := strings.ToLower(originQuery)
	dest := strings.ToLower(destQuery)

	for i := range lanes {
		l := lanes[i]
		route := strings.ToLower(l.Route)
		originHit := strings.Contains(strings.ToLower(l.OriginZip), origin) || strings.Contains(route, origin)
		destHit := strings.Contains(strings.ToLower(l.DestZip), dest) || strings.Contains(route, dest)
		if originHit && destHit {
			return &l, nil
		}
	}

	return nil, nil
}

// FindSimilarLanes locates the first lane matching the free-text pattern
// (list order = the store's grouping order), then returns every other lane
// in its cluster sorted by volume descending, truncated to limit.
// No match yields an empty result, never an error.
func (e *Engine) FindSimilarLanes(ctx context.Context, pattern string, limit int) (domain.SimilarLanesResult, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return domain.SimilarLanesResult{}, err
	}

	var target *domain.LaneMetrics
	for i := range lanes {
		if laneMatches(lanes[i], pattern) {
			target = &lanes[i]
			break
		}
	}

	if target == nil {
		return domain.SimilarLanesResult{SimilarLanes: []domain.LaneMetrics{}}, nil
	}

	similar := make([]domain.LaneMetrics, 0, len(lanes))
	for _, l := range lanes {
		if l.ClusterID != target.ClusterID {
			continue
		}
		if l.OriginZip == target.OriginZip && l.DestZip == target.DestZip {
			continue
		}
		similar = append(similar, l)
	}

	sortLanesByVolume(similar)
	if limit > 0 && len(similar) > limit {
		similar = similar[:limit]
	}

	return domain.SimilarLanesResult{
		TargetLane:     target,
		SimilarLanes:   similar,
		SharedPlaybook: target.ClusterName,
	}, nil
}
