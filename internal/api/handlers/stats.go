package handlers

import (
	"net/http"

	"lane-analytics-service/internal/api/dto"
	"lane-analytics-service/internal/services"
)

type StatsHandler struct {
	Engine *services.Engine
}

// Get serves GET /api/v1/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Engine.NetworkStats(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StatsResponse{
		TotalShipments:    stats.TotalShipments,
		TotalLanes:        stats.TotalLanes,
		TotalCarriers:     stats.TotalCarriers,
		TotalLocations:    stats.TotalLocations,
		OverallOnTimeRate: stats.OverallOnTimeRate,
		OverallLateRate:   stats.OverallLateRate,
		OverallEarlyRate:  stats.OverallEarlyRate,
	})
}
