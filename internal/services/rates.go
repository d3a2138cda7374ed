package services

import "lane-analytics-service/internal/domain"

// DeriveRates converts outcome counts into fractions of volume.
//
// The store's grouping guarantees Volume >= 1, so zero volume is treated
// defensively as all-zero rates rather than letting NaN propagate into
// rounded output.
func DeriveRates(agg domain.LaneAggregate) (early, onTime, late float64) {
	if agg.Volume <= 0 {
		return 0, 0, 0
	}

	vol := float64(agg.Volume)
	return float64(agg.EarlyCount) / vol,
		float64(agg.OnTimeCount) / vol,
		float64(agg.LateCount) / vol
}
