package domain

// LaneAggregate is one raw aggregation row per (origin, destination) pair,
// produced by the shipment store's GROUP BY query. The store guarantees
// Volume >= 1 and EarlyCount + OnTimeCount + LateCount == Volume.
type LaneAggregate struct {
	OriginZip       string
	DestZip         string
	Volume          int64
	AvgDelay        float64 // mean(actual - goal transit days), signed; negative means early
	TransitVariance float64 // variance of actual transit days
	EarlyCount      int64
	OnTimeCount     int64
	LateCount       int64
}

// LaneMetrics is the derived, classified form of a lane. Rates are fractions
// of volume in [0,1]; for Volume > 0 they sum to 1 within float tolerance.
// Instances are owned by the lane cache and shared read-only with all views.
type LaneMetrics struct {
	OriginZip       string
	DestZip         string
	Route           string // human-readable label, e.g. "DFW→TUS"
	Volume          int64
	AvgDelay        float64
	TransitVariance float64
	EarlyRate       float64
	OnTimeRate      float64
	LateRate        float64
	ClusterID       int
	ClusterName     string
}

// LaneDisplay is the presentation form of LaneMetrics: rates converted to
// one-decimal percentages, delay and variance rounded to two decimals.
// Every adapter renders lanes through this type so rounding lives in one place.
type LaneDisplay struct {
	OriginZip       string
	DestZip         string
	Route           string
	Volume          int64
	AvgDelay        float64
	TransitVariance float64
	EarlyPct        float64
	OnTimePct       float64
	LatePct         float64
	ClusterID       int
	ClusterName     string
}

// Display returns the rounded presentation form of the lane.
func (l LaneMetrics) Display() LaneDisplay {
	return LaneDisplay{
		OriginZip:       l.OriginZip,
		DestZip:         l.DestZip,
		Route:           l.Route,
		Volume:          l.Volume,
		AvgDelay:        Round2(l.AvgDelay),
		TransitVariance: Round2(l.TransitVariance),
		EarlyPct:        Pct1(l.EarlyRate),
		OnTimePct:       Pct1(l.OnTimeRate),
		LatePct:         Pct1(l.LateRate),
		ClusterID:       l.ClusterID,
		ClusterName:     l.ClusterName,
	}
}
