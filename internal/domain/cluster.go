package domain

// Cluster is a per-request summary of one behavioral cluster. The five
// clusters partition the lane list: every lane carries exactly one
// ClusterID in 1..5.
type Cluster struct {
	ID          int
	Name        string
	Description string
	LaneCount   int
	TotalVolume int64
	AvgDelay    float64 // arithmetic mean over member lanes, 2dp; 0 if no members
	AvgLateRate float64 // mean late rate over member lanes as a percentage, 1dp
}

// Playbook is the static operational guidance attached to a cluster.
// Immutable for the process lifetime; a pure lookup, never derived from data.
type Playbook struct {
	ClusterID   int
	ClusterName string
	Description string
	Actions     []string
}
