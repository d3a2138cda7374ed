package handlers

import (
	"net/http"

	"lane-analytics-service/internal/api/dto"
	"lane-analytics-service/internal/services"
)

type LaneHandler struct {
	Engine *services.Engine
}

// List serves GET /api/v1/lanes?limit=N.
func (h *LaneHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 100)

	lanes, err := h.Engine.Lanes(r.Context(), limit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LanesFromMetrics(lanes))
}

// Profile serves GET /api/v1/lanes/{origin}/{dest}. Origin and destination
// accept ZIP3 codes or city-name fragments.
func (h *LaneHandler) Profile(w http.ResponseWriter, r *http.Request) {
	origin := r.PathValue("origin")
	dest := r.PathValue("dest")

	lane, err := h.Engine.LaneProfile(r.Context(), origin, dest)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if lane == nil {
		writeError(w, r, http.StatusNotFound, "lane not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LaneFromMetrics(*lane))
}
