package services

import "lane-analytics-service/internal/domain"

type clusterDef struct {
	id          int
	name        string
	description string
	actions     []string
}

// Static catalog of the five behavioral clusters. Configuration data, not
// derived; immutable for the process lifetime.
var clusterDefs = []clusterDef{
	{
		id:          1,
		name:        ClusterEarlyStable,
		description: "Consistently arrive 0.5-2 days early with low variance",
		actions: []string{
			"Implement hold-until policies at local depot",
			"Offer tight customer delivery windows",
			"Consider tightening SLA promises (reduce buffer)",
			"Use for premium time-slot offerings",
		},
	},
	{
		id:          2,
		name:        ClusterOnTimeReliable,
		description: "High on-time rate with predictable transit",
		actions: []string{
			"Maintain current operations - these are your best lanes",
			"Use as benchmark for other lanes",
			"Suitable for guaranteed delivery promises",
			"Monitor for degradation, protect capacity",
		},
	},
	{
		id:          3,
		name:        ClusterHighJitter,
		description: "Average is OK but high variance - unpredictable",
		actions: []string{
			"Add buffer days to customer promises",
			"Avoid 'guaranteed by noon' commitments",
			"Route to lockers/pickup points to handle timing uncertainty",
			"Investigate root cause: carrier issues? weather corridors?",
		},
	},
	{
		id:          4,
		name:        ClusterSystemLate,
		description: "Consistently miss SLA - structural problem",
		actions: []string{
			"Downgrade promise (next-day to 2-day) for these lanes",
			"Negotiate with carriers or switch providers",
			"Consider pre-positioning inventory closer to destination",
			"Flag for carrier performance review",
		},
	},
	{
		id:          5,
		name:        ClusterLowVolume,
		description: "Insufficient data or mixed patterns",
		actions: []string{
			"Apply conservative SLA buffers",
			"Monitor as volume grows",
			"Consider consolidating with similar lanes",
			"Default to standard operating procedures",
		},
	},
}

// PlaybookFor returns the static playbook for a cluster id.
// Pure lookup with no cache dependency; ok is false for ids outside 1..5.
func PlaybookFor(clusterID int) (domain.Playbook, bool) {
	for _, def := range clusterDefs {
		if def.id == clusterID {
			return domain.Playbook{
				ClusterID:   def.id,
				ClusterName: def.name,
				Description: def.description,
				Actions:     append([]string(nil), def.actions...),
			}, true
		}
	}
	return domain.Playbook{}, false
}
