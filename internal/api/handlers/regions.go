package handlers

import (
	"net/http"

	"lane-analytics-service/internal/api/dto"
	"lane-analytics-service/internal/services"
)

type RegionHandler struct {
	Engine *services.Engine
}

// Get serves GET /api/v1/regions/{region}.
func (h *RegionHandler) Get(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")

	perf, err := h.Engine.RegionalPerformance(r.Context(), region)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if perf == nil {
		writeError(w, r, http.StatusNotFound, "no lanes match region")
		return
	}

	breakdown := make([]dto.ClusterBreakdownResponse, 0, len(perf.ClusterBreakdown))
	for _, b := range perf.ClusterBreakdown {
		breakdown = append(breakdown, dto.ClusterBreakdownResponse{
			Cluster:   b.Cluster,
			LaneCount: b.LaneCount,
			Volume:    b.Volume,
		})
	}

	writeJSON(w, r, http.StatusOK, dto.RegionalResponse{
		Region:               perf.Region,
		TotalLanes:           perf.TotalLanes,
		TotalVolume:          perf.TotalVolume,
		AvgLateRate:          perf.AvgLateRate,
		AvgEarlyRate:         perf.AvgEarlyRate,
		AvgDelay:             perf.AvgDelay,
		ClusterBreakdown:     breakdown,
		HighestFrictionLanes: dto.LanesFromMetrics(perf.HighestFrictionLanes),
	})
}
