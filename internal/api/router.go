package api

import (
	"lane-analytics-service/internal/api/handlers"
	"lane-analytics-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay thin and
// delegate every decision to the analytics engine.
func NewRouter(engine *services.Engine) http.Handler {
	mux := http.NewServeMux()

	laneHandler := &handlers.LaneHandler{Engine: engine}
	clusterHandler := &handlers.ClusterHandler{Engine: engine}
	regionHandler := &handlers.RegionHandler{Engine: engine}
	analysisHandler := &handlers.AnalysisHandler{Engine: engine}
	searchHandler := &handlers.SearchHandler{Engine: engine}
	statsHandler := &handlers.StatsHandler{Engine: engine}
	cacheHandler := &handlers.CacheHandler{Engine: engine}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /api/v1/stats", statsHandler.Get)
	mux.HandleFunc("GET /api/v1/lanes", laneHandler.List)
	mux.HandleFunc("GET /api/v1/lanes/{origin}/{dest}", laneHandler.Profile)
	mux.HandleFunc("GET /api/v1/clusters", clusterHandler.List)
	mux.HandleFunc("GET /api/v1/clusters/{id}/lanes", clusterHandler.Lanes)
	mux.HandleFunc("GET /api/v1/clusters/{id}/playbook", clusterHandler.Playbook)
	mux.HandleFunc("GET /api/v1/regions/{region}", regionHandler.Get)
	mux.HandleFunc("GET /api/v1/analysis/friction", analysisHandler.Friction)
	mux.HandleFunc("GET /api/v1/analysis/terminals", analysisHandler.Terminals)
	mux.HandleFunc("GET /api/v1/analysis/early", analysisHandler.Early)
	mux.HandleFunc("GET /api/v1/search/similar", searchHandler.Similar)
	mux.HandleFunc("POST /api/v1/cache/invalidate", cacheHandler.Invalidate)

	return loggingMiddleware(mux)
}
