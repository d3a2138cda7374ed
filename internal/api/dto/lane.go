package dto

import "lane-analytics-service/internal/domain"

// LaneResponse carries display-rounded lane values: rates are one-decimal
// percentages, delay and variance two-decimal day values.
type LaneResponse struct {
	OriginZip       string  `json:"origin_zip"`
	DestZip         string  `json:"dest_zip"`
	Route           string  `json:"route"`
	Volume          int64   `json:"volume"`
	AvgDelay        float64 `json:"avg_delay"`
	TransitVariance float64 `json:"transit_variance"`
	EarlyRate       float64 `json:"early_rate"`
	OnTimeRate      float64 `json:"on_time_rate"`
	LateRate        float64 `json:"late_rate"`
	ClusterID       int     `json:"cluster_id"`
	ClusterName     string  `json:"cluster_name"`
}

func LaneFromMetrics(l domain.LaneMetrics) LaneResponse {
	d := l.Display()
	return LaneResponse{
		OriginZip:       d.OriginZip,
		DestZip:         d.DestZip,
		Route:           d.Route,
		Volume:          d.Volume,
		AvgDelay:        d.AvgDelay,
		TransitVariance: d.TransitVariance,
		EarlyRate:       d.EarlyPct,
		OnTimeRate:      d.OnTimePct,
		LateRate:        d.LatePct,
		ClusterID:       d.ClusterID,
		ClusterName:     d.ClusterName,
	}
}

func LanesFromMetrics(lanes []domain.LaneMetrics) []LaneResponse {
	out := make([]LaneResponse, 0, len(lanes))
	for _, l := range lanes {
		out = append(out, LaneFromMetrics(l))
	}
	return out
}
