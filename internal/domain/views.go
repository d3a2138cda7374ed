package domain

// Ephemeral result records. Each is built fresh per request from the cached
// lane list; nothing here is persisted or shared across requests.

// FrictionZone is a destination ranked by delivery difficulty.
// Friction score = late_rate% + variance*10, one decimal.
type FrictionZone struct {
	DestZip         string
	Location        string
	FrictionScore   float64
	LateRate        float64 // volume-weighted, percentage, 1dp
	TransitVariance float64 // volume-weighted, 2dp
	Volume          int64
	LaneCount       int64
}

// TerminalPerformance scores an origin terminal on outbound performance.
// Score = round((1 - late_rate) * 100): 100 = all on-time/early, 0 = all late.
type TerminalPerformance struct {
	OriginZip        string
	Terminal         string
	PerformanceScore float64
	OnTimeRate       float64 // volume-weighted, percentage, 1dp
	LateRate         float64
	EarlyRate        float64
	Volume           int64
	LaneCount        int64
}

// TerminalReport is the network-wide terminal scoring view.
type TerminalReport struct {
	TotalTerminals  int64
	TotalVolume     int64
	AverageScore    float64
	TopPerformers   []TerminalPerformance
	NeedsAttention  []TerminalPerformance
	Recommendations []string
}

// ClusterBreakdown is the per-cluster slice of a regional rollup. All five
// clusters appear, including zero-count ones.
type ClusterBreakdown struct {
	Cluster   string
	LaneCount int
	Volume    int64
}

// RegionalPerformance aggregates every lane touching a region query as
// origin, destination, or route label.
type RegionalPerformance struct {
	Region               string
	TotalLanes           int
	TotalVolume          int64
	AvgLateRate          float64 // unweighted mean across matched lanes, percentage, 1dp
	AvgEarlyRate         float64
	AvgDelay             float64 // 2dp
	ClusterBreakdown     []ClusterBreakdown
	HighestFrictionLanes []LaneMetrics
}

// EarlyDestination ranks a destination by early-shipment count.
type EarlyDestination struct {
	DestZip        string
	Location       string
	EarlyRate      float64 // percentage, 1dp
	AvgDaysEarly   float64 // volume-weighted over the destination's early lanes, 1dp
	EarlyShipments int64
	Volume         int64
}

// EarlyAnalysis is the network-wide early-delivery view.
type EarlyAnalysis struct {
	TotalShipments  int64
	EarlyShipments  int64
	EarlyRate       float64 // percentage, 1dp
	TopDestinations []EarlyDestination
	Recommendations []string
}

// SimilarLanesResult holds the matched target lane and its cluster peers.
// A missing target is an empty result, not an error.
type SimilarLanesResult struct {
	TargetLane     *LaneMetrics
	SimilarLanes   []LaneMetrics
	SharedPlaybook string
}

// NetworkStats summarizes the full shipment network. Carrier and location
// totals come from the injected name-lookup collaborator, not the lane list.
type NetworkStats struct {
	TotalShipments    int64
	TotalLanes        int64
	TotalCarriers     int64
	TotalLocations    int64
	OverallOnTimeRate float64 // volume-weighted, percentage, 1dp
	OverallLateRate   float64
	OverallEarlyRate  float64
}
