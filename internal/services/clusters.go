package services

import (
	"context"
	"lane-analytics-service/internal/domain"
)

// Clusters summarizes each of the five behavioral clusters over the cached
// lane list. Always returns five entries, including empty ones, so the
// result partitions the full list.
func (e *Engine) Clusters(ctx context.Context) ([]domain.Cluster, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return nil, err
	}

	clusters := make([]domain.Cluster, 0, len(clusterDefs))
	for _, def := range clusterDefs {
		var (
			count    int
			volume   int64
			delaySum float64
			lateSum  float64
		)
		for _, l := range lanes {
			if l.ClusterID != def.id {
				continue
			}
			count++
			volume += l.Volume
			delaySum += l.AvgDelay
			lateSum += l.LateRate
		}

		var avgDelay, avgLate float64
		if count > 0 {
			avgDelay = delaySum / float64(count)
			avgLate = lateSum / float64(count)
		}

		clusters = append(clusters, domain.Cluster{
			ID:          def.id,
			Name:        def.name,
			Description: def.description,
			LaneCount:   count,
			TotalVolume: volume,
			AvgDelay:    domain.Round2(avgDelay),
			AvgLateRate: domain.Pct1(avgLate),
		})
	}

	return clusters, nil
}

// LanesInCluster returns a cluster's member lanes sorted by volume
// descending, truncated to limit when limit > 0.
func (e *Engine) LanesInCluster(ctx context.Context, clusterID, limit int) ([]domain.LaneMetrics, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]domain.LaneMetrics, 0, len(lanes))
	for _, l := range lanes {
		if l.ClusterID == clusterID {
			members = append(members, l)
		}
	}

	sortLanesByVolume(members)
	if limit > 0 && len(members) > limit {
		members = members[:limit]
	}

	return members, nil
}
