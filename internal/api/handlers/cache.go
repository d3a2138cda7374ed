package handlers

import (
	"net/http"

	"lane-analytics-service/internal/services"
)

type CacheHandler struct {
	Engine *services.Engine
}

// Invalidate serves POST /api/v1/cache/invalidate. The next read repopulates
// from the shipment store.
func (h *CacheHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	if err := h.Engine.Invalidate(r.Context()); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "cache invalidated"})
}
