package services

// Cluster names. IDs are stable: 1..5 partition every lane list.
const (
	ClusterEarlyStable    = "Early & Stable"
	ClusterOnTimeReliable = "On-Time & Reliable"
	ClusterHighJitter     = "High-Jitter"
	ClusterSystemLate     = "Systematically Late"
	ClusterLowVolume      = "Low Volume / Mixed"
)

// ClassifierInput carries the derived metrics the decision list evaluates.
type ClassifierInput struct {
	AvgDelay        float64
	TransitVariance float64
	EarlyRate       float64
	OnTimeRate      float64
	LateRate        float64
	Volume          int64
}

type clusterRule struct {
	id    int
	name  string
	match func(in ClassifierInput) bool
}

// Ordered decision list; first match wins. The order resolves overlaps
// deliberately: a lane that is both high-variance and systematically late
// classifies as Late because that rule precedes the jitter check.
var clusterRules = []clusterRule{
	{5, ClusterLowVolume, func(in ClassifierInput) bool {
		return in.Volume < 20
	}},
	{1, ClusterEarlyStable, func(in ClassifierInput) bool {
		return in.AvgDelay < -0.3 && in.TransitVariance < 2.0 && in.EarlyRate > 0.3
	}},
	{4, ClusterSystemLate, func(in ClassifierInput) bool {
		return in.LateRate > 0.45
	}},
	{3, ClusterHighJitter, func(in ClassifierInput) bool {
		return in.TransitVariance > 3.5
	}},
	{2, ClusterOnTimeReliable, func(in ClassifierInput) bool {
		return in.OnTimeRate > 0.55 && in.TransitVariance < 2.5
	}},
	{5, ClusterLowVolume, func(in ClassifierInput) bool {
		return true
	}},
}

// Classify assigns a behavioral cluster to one lane. Pure function: no
// randomness, no external state, identical inputs always agree.
func Classify(in ClassifierInput) (id int, name string) {
	for _, r := range clusterRules {
		if r.match(in) {
			return r.id, r.name
		}
	}
	// Unreachable: the final rule always matches.
	return 5, ClusterLowVolume
}
