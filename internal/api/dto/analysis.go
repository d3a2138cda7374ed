package dto

type FrictionZoneResponse struct {
	DestZip         string  `json:"dest_zip"`
	Location        string  `json:"location"`
	FrictionScore   float64 `json:"friction_score"`
	LateRate        float64 `json:"late_rate"`
	TransitVariance float64 `json:"transit_variance"`
	Volume          int64   `json:"volume"`
	LaneCount       int64   `json:"lane_count"`
}

type FrictionZonesResponse struct {
	Zones           []FrictionZoneResponse `json:"zones"`
	Recommendations []string               `json:"recommendations"`
}

type TerminalResponse struct {
	OriginZip        string  `json:"origin_zip"`
	Terminal         string  `json:"terminal"`
	PerformanceScore float64 `json:"performance_score"`
	OnTimeRate       float64 `json:"on_time_rate"`
	LateRate         float64 `json:"late_rate"`
	EarlyRate        float64 `json:"early_rate"`
	Volume           int64   `json:"volume"`
	LaneCount        int64   `json:"lane_count"`
}

type TerminalsResponse struct {
	TotalTerminals   int64              `json:"total_terminals"`
	TotalVolume      int64              `json:"total_volume"`
	AverageScore     float64            `json:"average_score"`
	TopPerformers    []TerminalResponse `json:"top_performers"`
	NeedsImprovement []TerminalResponse `json:"needs_improvement"`
	Recommendations  []string           `json:"recommendations"`
}

type EarlyDestinationResponse struct {
	DestZip        string  `json:"dest_zip"`
	Location       string  `json:"location"`
	EarlyRate      float64 `json:"early_rate"`
	AvgDaysEarly   float64 `json:"avg_days_early"`
	EarlyShipments int64   `json:"early_shipments"`
	Volume         int64   `json:"volume"`
}

type EarlyAnalysisResponse struct {
	TotalShipments  int64                      `json:"total_shipments"`
	EarlyShipments  int64                      `json:"early_shipments"`
	EarlyRate       float64                    `json:"early_rate"`
	TopDestinations []EarlyDestinationResponse `json:"top_destinations"`
	Recommendations []string                   `json:"recommendations"`
}
