package dto

type ClusterResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	LaneCount   int     `json:"lane_count"`
	TotalVolume int64   `json:"total_volume"`
	AvgDelay    float64 `json:"avg_delay"`
	AvgLateRate float64 `json:"avg_late_rate"`
}

type PlaybookResponse struct {
	ClusterID   int      `json:"cluster_id"`
	ClusterName string   `json:"cluster_name"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}
