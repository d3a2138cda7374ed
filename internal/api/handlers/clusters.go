package handlers

import (
	"net/http"
	"strconv"

	"lane-analytics-service/internal/api/dto"
	"lane-analytics-service/internal/services"
)

type ClusterHandler struct {
	Engine *services.Engine
}

// List serves GET /api/v1/clusters.
func (h *ClusterHandler) List(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.Engine.Clusters(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	out := make([]dto.ClusterResponse, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, dto.ClusterResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			LaneCount:   c.LaneCount,
			TotalVolume: c.TotalVolume,
			AvgDelay:    c.AvgDelay,
			AvgLateRate: c.AvgLateRate,
		})
	}
	writeJSON(w, r, http.StatusOK, out)
}

// Lanes serves GET /api/v1/clusters/{id}/lanes?limit=N.
func (h *ClusterHandler) Lanes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid cluster id")
		return
	}
	limit := parseLimit(r, 20)

	lanes, err := h.Engine.LanesInCluster(r.Context(), id, limit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LanesFromMetrics(lanes))
}

// Playbook serves GET /api/v1/clusters/{id}/playbook.
func (h *ClusterHandler) Playbook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid cluster id")
		return
	}

	pb, ok := services.PlaybookFor(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "cluster not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlaybookResponse{
		ClusterID:   pb.ClusterID,
		ClusterName: pb.ClusterName,
		Description: pb.Description,
		Actions:     pb.Actions,
	})
}
