package dto

type ClusterBreakdownResponse struct {
	Cluster   string `json:"cluster"`
	LaneCount int    `json:"lane_count"`
	Volume    int64  `json:"volume"`
}

type RegionalResponse struct {
	Region               string                     `json:"region"`
	TotalLanes           int                        `json:"total_lanes"`
	TotalVolume          int64                      `json:"total_volume"`
	AvgLateRate          float64                    `json:"avg_late_rate"`
	AvgEarlyRate         float64                    `json:"avg_early_rate"`
	AvgDelay             float64                    `json:"avg_delay"`
	ClusterBreakdown     []ClusterBreakdownResponse `json:"cluster_breakdown"`
	HighestFrictionLanes []LaneResponse             `json:"highest_friction_lanes"`
}
