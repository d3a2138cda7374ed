package services

import (
	"context"
	"lane-analytics-service/internal/domain"
	"sort"
)

// RegionalPerformance rolls up every lane touching the region query as
// origin, destination, or route label. Returns nil when nothing matches;
// that is "no data", not an error.
func (e *Engine) RegionalPerformance(ctx context.Context, region string) (*domain.RegionalPerformance, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.LaneMetrics, 0, len(lanes))
	for _, l := range lanes {
		if laneMatches(l, region) {
			matched = append(matched, l)
		}
	}

	if len(matched) == 0 {
		return nil, nil
	}

	var (
		volume   int64
		lateSum  float64
		earlySum float64
		delaySum float64
	)
	for _, l := range matched {
		volume += l.Volume
		lateSum += l.LateRate
		earlySum += l.EarlyRate
		delaySum += l.AvgDelay
	}
	n := float64(len(matched))

	// Fixed breakdown across all five cluster ids, zero-count ones included.
	breakdown := make([]domain.ClusterBreakdown, 0, len(clusterDefs))
	for _, def := range clusterDefs {
		var count int
		var vol int64
		for _, l := range matched {
			if l.ClusterID == def.id {
				count++
				vol += l.Volume
			}
		}
		breakdown = append(breakdown, domain.ClusterBreakdown{
			Cluster:   def.name,
			LaneCount: count,
			Volume:    vol,
		})
	}

	// Worst lanes with meaningful volume, ranked by late rate.
	problem := make([]domain.LaneMetrics, 0, len(matched))
	for _, l := range matched {
		if l.Volume >= 10 {
			problem = append(problem, l)
		}
	}
	sort.Slice(problem, func(i, j int) bool {
		if problem[i].LateRate != problem[j].LateRate {
			return problem[i].LateRate > problem[j].LateRate
		}
		return problem[i].Route < problem[j].Route
	})
	if len(problem) > 5 {
		problem = problem[:5]
	}

	return &domain.RegionalPerformance{
		Region:               region,
		TotalLanes:           len(matched),
		TotalVolume:          volume,
		AvgLateRate:          domain.Pct1(lateSum / n),
		AvgEarlyRate:         domain.Pct1(earlySum / n),
		AvgDelay:             domain.Round2(delaySum / n),
		ClusterBreakdown:     breakdown,
		HighestFrictionLanes: problem,
	}, nil
}
