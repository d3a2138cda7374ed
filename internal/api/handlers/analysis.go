package handlers

import (
	"net/http"

	"lane-analytics-service/internal/api/dto"
	"lane-analytics-service/internal/domain"
	"lane-analytics-service/internal/services"
)

type AnalysisHandler struct {
	Engine *services.Engine
}

// Friction serves GET /api/v1/analysis/friction?limit=N.
func (h *AnalysisHandler) Friction(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 10)

	zones, err := h.Engine.FrictionZones(r.Context(), limit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	out := make([]dto.FrictionZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, dto.FrictionZoneResponse{
			DestZip:         z.DestZip,
			Location:        z.Location,
			FrictionScore:   z.FrictionScore,
			LateRate:        z.LateRate,
			TransitVariance: z.TransitVariance,
			Volume:          z.Volume,
			LaneCount:       z.LaneCount,
		})
	}
	writeJSON(w, r, http.StatusOK, dto.FrictionZonesResponse{
		Zones:           out,
		Recommendations: services.FrictionRecommendations,
	})
}

// Terminals serves GET /api/v1/analysis/terminals?limit=N.
func (h *AnalysisHandler) Terminals(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 5)

	report, err := h.Engine.TerminalPerformance(r.Context(), limit)
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.TerminalsResponse{
		TotalTerminals:   report.TotalTerminals,
		TotalVolume:      report.TotalVolume,
		AverageScore:     report.AverageScore,
		TopPerformers:    terminalResponses(report.TopPerformers),
		NeedsImprovement: terminalResponses(report.NeedsAttention),
		Recommendations:  report.Recommendations,
	})
}

// Early serves GET /api/v1/analysis/early.
func (h *AnalysisHandler) Early(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.Engine.EarlyAnalysis(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	dests := make([]dto.EarlyDestinationResponse, 0, len(analysis.TopDestinations))
	for _, d := range analysis.TopDestinations {
		dests = append(dests, dto.EarlyDestinationResponse{
			DestZip:        d.DestZip,
			Location:       d.Location,
			EarlyRate:      d.EarlyRate,
			AvgDaysEarly:   d.AvgDaysEarly,
			EarlyShipments: d.EarlyShipments,
			Volume:         d.Volume,
		})
	}
	writeJSON(w, r, http.StatusOK, dto.EarlyAnalysisResponse{
		TotalShipments:  analysis.TotalShipments,
		EarlyShipments:  analysis.EarlyShipments,
		EarlyRate:       analysis.EarlyRate,
		TopDestinations: dests,
		Recommendations: analysis.Recommendations,
	})
}

func terminalResponses(terms []domain.TerminalPerformance) []dto.TerminalResponse {
	out := make([]dto.TerminalResponse, 0, len(terms))
	for _, t := range terms {
		out = append(out, dto.TerminalResponse{
			OriginZip:        t.OriginZip,
			Terminal:         t.Terminal,
			PerformanceScore: t.PerformanceScore,
			OnTimeRate:       t.OnTimeRate,
			LateRate:         t.LateRate,
			EarlyRate:        t.EarlyRate,
			Volume:           t.Volume,
			LaneCount:        t.LaneCount,
		})
	}
	return out
}
