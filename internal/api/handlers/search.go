package handlers

import (
	"net/http"

	"lane-analytics-service/internal/api/dto"
	"lane-analytics-service/internal/services"
)

type SearchHandler struct {
	Engine *services.Engine
}

// Similar serves GET /api/v1/search/similar?lane=PATTERN&limit=N. An
// unmatched pattern returns an empty result set, not a 404.
func (h *SearchHandler) Similar(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("lane")
	if pattern == "" {
		writeError(w, r, http.StatusBadRequest, "missing required query parameter: lane")
		return
	}
	limit := parseLimit(r, 10)

	result, err := h.Engine.FindSimilarLanes(r.Context(), pattern, limit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	resp := dto.SimilarLanesResponse{
		SimilarLanes:   dto.LanesFromMetrics(result.SimilarLanes),
		SharedPlaybook: result.SharedPlaybook,
	}
	if result.TargetLane != nil {
		target := dto.LaneFromMetrics(*result.TargetLane)
		resp.TargetLane = &target
	}
	writeJSON(w, r, http.StatusOK, resp)
}
