package dto

type StatsResponse struct {
	TotalShipments    int64   `json:"total_shipments"`
	TotalLanes        int64   `json:"total_lanes"`
	TotalCarriers     int64   `json:"total_carriers"`
	TotalLocations    int64   `json:"total_locations"`
	OverallOnTimeRate float64 `json:"overall_on_time_rate"`
	OverallLateRate   float64 `json:"overall_late_rate"`
	OverallEarlyRate  float64 `json:"overall_early_rate"`
}
