package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/services"
)

type toolDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func noArgSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
		"required":   []string{},
	}
}

var toolDefs = []toolDef{
	{
		Name:        "get_lane_clusters",
		Description: "Get all lane behavioral clusters with summary statistics. Returns 5 clusters: Early & Stable, On-Time & Reliable, High-Jitter, Systematically Late, and Low Volume/Mixed.",
		InputSchema: noArgSchema(),
	},
	{
		Name:        "get_lanes_in_cluster",
		Description: "Get lanes in a specific cluster. Cluster IDs: 1=Early & Stable, 2=On-Time & Reliable, 3=High-Jitter, 4=Systematically Late, 5=Low Volume/Mixed",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cluster_id": map[string]any{"type": "integer", "description": "Cluster ID (1-5)"},
				"limit":      map[string]any{"type": "integer", "description": "Maximum number of lanes to return (default 20)"},
			},
			"required": []string{"cluster_id"},
		},
	},
	{
		Name:        "get_lane_profile",
		Description: "Get metrics and cluster assignment for a specific lane. Provide origin and destination as ZIP3 codes or location names.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"origin": map[string]any{"type": "string", "description": "Origin ZIP3 code or DC name (e.g., '750' or 'DFW')"},
				"dest":   map[string]any{"type": "string", "description": "Destination ZIP3 code or region name (e.g., '857' or 'TUS')"},
			},
			"required": []string{"origin", "dest"},
		},
	},
	{
		Name:        "get_cluster_playbook",
		Description: "Get recommended last-mile strategy and actions for a cluster.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cluster_id": map[string]any{"type": "integer", "description": "Cluster ID (1-5)"},
			},
			"required": []string{"cluster_id"},
		},
	},
	{
		Name:        "find_similar_lanes",
		Description: "Find lanes that behave similarly to a target lane. Lanes in the same cluster share similar delivery patterns.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"pattern": map[string]any{"type": "string", "description": "Search pattern - origin ZIP3, destination ZIP3, or location name"},
				"limit":   map[string]any{"type": "integer", "description": "Maximum number of similar lanes to return (default 10)"},
			},
			"required": []string{"pattern"},
		},
	},
	{
		Name:        "get_early_delivery_analysis",
		Description: "Analyze early delivery patterns across the network. Shows which destinations receive early shipments and where over-provisioned transit times may hide.",
		InputSchema: noArgSchema(),
	},
	{
		Name:        "get_regional_performance",
		Description: "Get performance metrics for a specific region (ZIP3 or location code). Shows lane breakdown by cluster, volume, late rates, and identifies problem lanes.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"zip3": map[string]any{"type": "string", "description": "ZIP3 code or location name (e.g., '750', 'DFW', 'PHX', 'TUS')"},
			},
			"required": []string{"zip3"},
		},
	},
	{
		Name:        "get_friction_zones",
		Description: "Identify high-friction destination zones with poor delivery performance. Returns destinations ranked by friction score (combination of late rate and transit variance).",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{"type": "integer", "description": "Maximum number of friction zones to return (default 10)"},
			},
			"required": []string{},
		},
	},
	{
		Name:        "get_terminal_performance",
		Description: "Score origin terminals/DCs on their outbound delivery performance. Returns a performance index (0-100) for each terminal, with best and worst performers highlighted.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{"type": "integer", "description": "Number of top/bottom performers to show (default 5)"},
			},
			"required": []string{},
		},
	},
	{
		Name:        "get_network_stats",
		Description: "Get network-wide shipment statistics: totals and overall early/on-time/late rates.",
		InputSchema: noArgSchema(),
	},
}

type toolArgs struct {
	ClusterID int    `json:"cluster_id"`
	Limit     int    `json:"limit"`
	Origin    string `json:"origin"`
	Dest      string `json:"dest"`
	Pattern   string `json:"pattern"`
	Zip3      string `json:"zip3"`
}

// dispatchTool maps a tool name to an engine call and shapes the payload.
// Unknown tools and unmatched lookups return an error payload in-band; only
// engine failures surface as Go errors (and become isError results).
func (s *Server) dispatchTool(ctx context.Context, name string, raw json.RawMessage) (any, error) {
	var args toolArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, fmt.Errorf("decode arguments: %w", err)
		}
	}

	switch name {
	case "get_lane_clusters":
		return s.laneClusters(ctx)
	case "get_lanes_in_cluster":
		return s.lanesInCluster(ctx, args.ClusterID, orDefault(args.Limit, 20))
	case "get_lane_profile":
		return s.laneProfile(ctx, args.Origin, args.Dest)
	case "get_cluster_playbook":
		return clusterPlaybook(args.ClusterID), nil
	case "find_similar_lanes":
		return s.similarLanes(ctx, args.Pattern, orDefault(args.Limit, 10))
	case "get_early_delivery_analysis":
		return s.earlyAnalysis(ctx)
	case "get_regional_performance":
		return s.regionalPerformance(ctx, args.Zip3)
	case "get_friction_zones":
		return s.frictionZones(ctx, orDefault(args.Limit, 10))
	case "get_terminal_performance":
		return s.terminalPerformance(ctx, orDefault(args.Limit, 5))
	case "get_network_stats":
		return s.networkStats(ctx)
	default:
		return map[string]string{"error": fmt.Sprintf("Unknown tool: %s", name)}, nil
	}
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

func lanePayload(l domain.LaneMetrics) map[string]any {
	d := l.Display()
	return map[string]any{
		"route":            d.Route,
		"origin_zip":       d.OriginZip,
		"dest_zip":         d.DestZip,
		"cluster_id":       d.ClusterID,
		"cluster_name":     d.ClusterName,
		"volume":           d.Volume,
		"avg_delay_days":   d.AvgDelay,
		"transit_variance": d.TransitVariance,
		"early_pct":        d.EarlyPct,
		"on_time_pct":      d.OnTimePct,
		"late_pct":         d.LatePct,
	}
}

func (s *Server) laneClusters(ctx context.Context) (any, error) {
	clusters, err := s.Engine.Clusters(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, map[string]any{
			"id":                c.ID,
			"name":              c.Name,
			"description":       c.Description,
			"lane_count":        c.LaneCount,
			"total_volume":      c.TotalVolume,
			"avg_delay_days":    c.AvgDelay,
			"avg_late_rate_pct": c.AvgLateRate,
		})
	}
	return out, nil
}

func (s *Server) lanesInCluster(ctx context.Context, clusterID, limit int) (any, error) {
	lanes, err := s.Engine.LanesInCluster(ctx, clusterID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(lanes))
	for _, l := range lanes {
		d := l.Display()
		out = append(out, map[string]any{
			"route":          d.Route,
			"volume":         d.Volume,
			"avg_delay_days": d.AvgDelay,
			"early_pct":      d.EarlyPct,
			"on_time_pct":    d.OnTimePct,
			"late_pct":       d.LatePct,
		})
	}
	return out, nil
}

func (s *Server) laneProfile(ctx context.Context, origin, dest string) (any, error) {
	lane, err := s.Engine.LaneProfile(ctx, origin, dest)
	if err != nil {
		return nil, err
	}
	if lane == nil {
		return map[string]string{
			"error": fmt.Sprintf("Lane not found matching origin='%s' and dest='%s'", origin, dest),
		}, nil
	}
	return lanePayload(*lane), nil
}

func clusterPlaybook(clusterID int) any {
	pb, ok := services.PlaybookFor(clusterID)
	if !ok {
		return map[string]string{
			"error": fmt.Sprintf("Cluster %d not found. Valid IDs: 1-5", clusterID),
		}
	}
	return map[string]any{
		"cluster_id":          pb.ClusterID,
		"cluster_name":        pb.ClusterName,
		"description":         pb.Description,
		"recommended_actions": pb.Actions,
	}
}

func (s *Server) similarLanes(ctx context.Context, pattern string, limit int) (any, error) {
	result, err := s.Engine.FindSimilarLanes(ctx, pattern, limit)
	if err != nil {
		return nil, err
	}
	if result.TargetLane == nil {
		return map[string]string{
			"error": fmt.Sprintf("No lane found matching '%s'. Try a ZIP3 code like '750' or location name like 'DFW'.", pattern),
		}, nil
	}

	target := result.TargetLane.Display()
	similar := make([]map[string]any, 0, len(result.SimilarLanes))
	for _, l := range result.SimilarLanes {
		d := l.Display()
		similar = append(similar, map[string]any{
			"route":          d.Route,
			"volume":         d.Volume,
			"avg_delay_days": d.AvgDelay,
			"late_pct":       d.LatePct,
		})
	}
	return map[string]any{
		"target_lane": map[string]any{
			"route":        target.Route,
			"cluster_name": target.ClusterName,
			"volume":       target.Volume,
			"late_pct":     target.LatePct,
		},
		"similar_lanes":   similar,
		"shared_playbook": result.SharedPlaybook,
	}, nil
}

func (s *Server) earlyAnalysis(ctx context.Context) (any, error) {
	analysis, err := s.Engine.EarlyAnalysis(ctx)
	if err != nil {
		return nil, err
	}

	dests := make([]map[string]any, 0, len(analysis.TopDestinations))
	for _, d := range analysis.TopDestinations {
		dests = append(dests, map[string]any{
			"dest_zip":        d.DestZip,
			"location":        d.Location,
			"early_rate_pct":  d.EarlyRate,
			"avg_days_early":  d.AvgDaysEarly,
			"early_shipments": d.EarlyShipments,
			"volume":          d.Volume,
		})
	}
	return map[string]any{
		"summary": map[string]any{
			"total_shipments": analysis.TotalShipments,
			"early_shipments": analysis.EarlyShipments,
			"early_rate_pct":  analysis.EarlyRate,
			"definition":      "Early = delivered before goal transit days",
		},
		"top_early_destinations": dests,
		"recommendations":        analysis.Recommendations,
	}, nil
}

func (s *Server) regionalPerformance(ctx context.Context, zip3 string) (any, error) {
	perf, err := s.Engine.RegionalPerformance(ctx, zip3)
	if err != nil {
		return nil, err
	}
	if perf == nil {
		return map[string]string{
			"error": fmt.Sprintf("No lanes found for region '%s'. Try a ZIP3 like '750' or location like 'DFW'.", zip3),
		}, nil
	}

	breakdown := make([]map[string]any, 0, len(perf.ClusterBreakdown))
	for _, b := range perf.ClusterBreakdown {
		breakdown = append(breakdown, map[string]any{
			"cluster":    b.Cluster,
			"lane_count": b.LaneCount,
			"volume":     b.Volume,
		})
	}
	problems := make([]map[string]any, 0, len(perf.HighestFrictionLanes))
	for _, l := range perf.HighestFrictionLanes {
		d := l.Display()
		problems = append(problems, map[string]any{
			"route":    d.Route,
			"late_pct": d.LatePct,
			"volume":   d.Volume,
			"cluster":  d.ClusterName,
		})
	}
	return map[string]any{
		"region": perf.Region,
		"summary": map[string]any{
			"total_lanes":        perf.TotalLanes,
			"total_volume":       perf.TotalVolume,
			"avg_late_rate_pct":  perf.AvgLateRate,
			"avg_early_rate_pct": perf.AvgEarlyRate,
			"avg_delay_days":     perf.AvgDelay,
		},
		"cluster_breakdown":      breakdown,
		"highest_friction_lanes": problems,
	}, nil
}

func (s *Server) frictionZones(ctx context.Context, limit int) (any, error) {
	zones, err := s.Engine.FrictionZones(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(zones))
	for _, z := range zones {
		out = append(out, map[string]any{
			"dest_zip":         z.DestZip,
			"location":         z.Location,
			"friction_score":   z.FrictionScore,
			"late_rate_pct":    z.LateRate,
			"transit_variance": z.TransitVariance,
			"volume":           z.Volume,
			"lane_count":       z.LaneCount,
		})
	}
	return map[string]any{
		"description":            "Friction zones are destinations with high late rates and transit variance",
		"friction_score_formula": "late_rate% + (variance * 10)",
		"friction_zones":         out,
		"recommendations":        services.FrictionRecommendations,
	}, nil
}

func (s *Server) terminalPerformance(ctx context.Context, limit int) (any, error) {
	report, err := s.Engine.TerminalPerformance(ctx, limit)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"network_summary": map[string]any{
			"total_terminals":           report.TotalTerminals,
			"total_volume":              report.TotalVolume,
			"average_performance_score": report.AverageScore,
			"score_definition":          "100 = all on-time/early, 0 = all late",
		},
		"top_performers":    terminalPayloads(report.TopPerformers),
		"needs_improvement": terminalPayloads(report.NeedsAttention),
		"recommendations":   report.Recommendations,
	}, nil
}

func terminalPayloads(terms []domain.TerminalPerformance) []map[string]any {
	out := make([]map[string]any, 0, len(terms))
	for _, t := range terms {
		out = append(out, map[string]any{
			"origin_zip":        t.OriginZip,
			"terminal":          t.Terminal,
			"performance_score": t.PerformanceScore,
			"on_time_rate_pct":  t.OnTimeRate,
			"late_rate_pct":     t.LateRate,
			"early_rate_pct":    t.EarlyRate,
			"volume":            t.Volume,
			"lane_count":        t.LaneCount,
		})
	}
	return out
}

func (s *Server) networkStats(ctx context.Context) (any, error) {
	stats, err := s.Engine.NetworkStats(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"total_shipments":      stats.TotalShipments,
		"total_lanes":          stats.TotalLanes,
		"total_carriers":       stats.TotalCarriers,
		"total_locations":      stats.TotalLocations,
		"overall_on_time_rate": stats.OverallOnTimeRate,
		"overall_late_rate":    stats.OverallLateRate,
		"overall_early_rate":   stats.OverallEarlyRate,
	}, nil
}
