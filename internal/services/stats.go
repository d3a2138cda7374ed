package services

import (
	"context"
	"lane-analytics-service/internal/domain"
)

// NetworkStats sums volume and lane count across the full cached list and
// computes overall outcome rates as volume-weighted means. Carrier and
// location totals come from the name-lookup collaborator.
func (e *Engine) NetworkStats(ctx context.Context) (domain.NetworkStats, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return domain.NetworkStats{}, err
	}

	var totalVolume int64
	var earlySum, onTimeSum, lateSum float64
	for _, l := range lanes {
		vol := float64(l.Volume)
		totalVolume += l.Volume
		earlySum += l.EarlyRate * vol
		onTimeSum += l.OnTimeRate * vol
		lateSum += l.LateRate * vol
	}

	var early, onTime, late float64
	if totalVolume > 0 {
		vol := float64(totalVolume)
		early = earlySum / vol * 100
		onTime = onTimeSum / vol * 100
		late = lateSum / vol * 100
	}

	return domain.NetworkStats{
		TotalShipments:    totalVolume,
		TotalLanes:        int64(len(lanes)),
		TotalCarriers:     int64(e.carriers.Count()),
		TotalLocations:    int64(e.locations.Count()),
		OverallOnTimeRate: domain.Round1(onTime),
		OverallLateRate:   domain.Round1(late),
		OverallEarlyRate:  domain.Round1(early),
	}, nil
}
