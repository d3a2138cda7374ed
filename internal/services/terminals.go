package services

import (
	"context"
	"lane-analytics-service/internal/domain"
	"math"
	"sort"
)

const terminalVolumeFloor = 50

// TerminalPerformance scores origin terminals on outbound delivery
// performance. Rates are volume-weighted across a terminal's lanes; score =
// round((1 - late_rate) * 100). Origins below the volume floor are excluded.
func (e *Engine) TerminalPerformance(ctx context.Context, limit int) (domain.TerminalReport, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return domain.TerminalReport{}, err
	}

	type originAgg struct {
		volume    int64
		lateSum   float64
		earlySum  float64
		onTimeSum float64
		lanes     int64
	}

	byOrigin := make(map[string]*originAgg)
	for _, l := range lanes {
		agg, ok := byOrigin[l.OriginZip]
		if !ok {
			agg = &originAgg{}
			byOrigin[l.OriginZip] = agg
		}
		vol := float64(l.Volume)
		agg.volume += l.Volume
		agg.lateSum += l.LateRate * vol
		agg.earlySum += l.EarlyRate * vol
		agg.onTimeSum += l.OnTimeRate * vol
		agg.lanes++
	}

	terminals := make([]domain.TerminalPerformance, 0, len(byOrigin))
	for origin, agg := range byOrigin {
		if agg.volume < terminalVolumeFloor {
			continue
		}

		vol := float64(agg.volume)
		lateRate := agg.lateSum / vol

		terminals = append(terminals, domain.TerminalPerformance{
			OriginZip:        origin,
			Terminal:         e.locations.LongName(origin),
			PerformanceScore: math.Round((1 - lateRate) * 100),
			OnTimeRate:       domain.Pct1(agg.onTimeSum / vol),
			LateRate:         domain.Pct1(lateRate),
			EarlyRate:        domain.Pct1(agg.earlySum / vol),
			Volume:           agg.volume,
			LaneCount:        agg.lanes,
		})
	}

	var totalVolume int64
	var scoreSum float64
	for _, t := range terminals {
		totalVolume += t.Volume
		scoreSum += t.PerformanceScore
	}
	var avgScore float64
	if len(terminals) > 0 {
		avgScore = scoreSum / float64(len(terminals))
	}

	top := append([]domain.TerminalPerformance(nil), terminals...)
	sort.Slice(top, func(i, j int) bool {
		if top[i].PerformanceScore != top[j].PerformanceScore {
			return top[i].PerformanceScore > top[j].PerformanceScore
		}
		return top[i].OriginZip < top[j].OriginZip
	})

	bottom := append([]domain.TerminalPerformance(nil), terminals...)
	sort.Slice(bottom, func(i, j int) bool {
		if bottom[i].PerformanceScore != bottom[j].PerformanceScore {
			return bottom[i].PerformanceScore < bottom[j].PerformanceScore
		}
		return bottom[i].OriginZip < bottom[j].OriginZip
	})

	if limit > 0 {
		if len(top) > limit {
			top = top[:limit]
		}
		if len(bottom) > limit {
			bottom = bottom[:limit]
		}
	}

	return domain.TerminalReport{
		TotalTerminals: int64(len(terminals)),
		TotalVolume:    totalVolume,
		AverageScore:   domain.Round1(avgScore),
		TopPerformers:  top,
		NeedsAttention: bottom,
		Recommendations: []string{
			"Terminals scoring below 70 may need capacity review",
			"Consider load balancing from low-performers to high-performers",
			"Review carrier mix at underperforming terminals",
		},
	}, nil
}
