package services

import (
	"context"
	"lane-analytics-service/internal/domain"
	"sort"
)

// Advisory text attached to friction-zone responses by every adapter.
var FrictionRecommendations = []string{
	"High-friction zones may need carrier renegotiation",
	"Consider alternative routing or pre-positioning inventory",
	"Increase SLA buffer for these destinations",
}

const frictionVolumeFloor = 100

// FrictionZones ranks destinations by delivery difficulty. Per destination
// it computes volume-weighted mean late rate and transit variance, then
// friction score = late_rate% + variance*10. Destinations below the volume
// floor are excluded entirely, not scored as zero.
func (e *Engine) FrictionZones(ctx context.Context, limit int) ([]domain.FrictionZone, error) {
	lanes, err := e.cache.GetLanes(ctx)
	if err != nil {
		return nil, err
	}

	type destAgg struct {
		volume  int64
		lateSum float64 // late rate weighted by lane volume
		varSum  float64 // variance weighted by lane volume
		lanes   int64
	}

	byDest := make(map[string]*destAgg)
	for _, l := range lanes {
		agg, ok := byDest[l.DestZip]
		if !ok {
			agg = &destAgg{}
			byDest[l.DestZip] = agg
		}
		agg.volume += l.Volume
		agg.lateSum += l.LateRate * float64(l.Volume)
		agg.varSum += l.TransitVariance * float64(l.Volume)
		agg.lanes++
	}

	zones := make([]domain.FrictionZone, 0, len(byDest))
	for dest, agg := range byDest {
		if agg.volume < frictionVolumeFloor {
			continue
		}

		avgLate := agg.lateSum / float64(agg.volume)
		avgVar := agg.varSum / float64(agg.volume)

		zones = append(zones, domain.FrictionZone{
			DestZip:         dest,
			Location:        e.locations.LongName(dest),
			FrictionScore:   domain.Round1(avgLate*100 + avgVar*10),
			LateRate:        domain.Pct1(avgLate),
			TransitVariance: domain.Round2(avgVar),
			Volume:          agg.volume,
			LaneCount:       agg.lanes,
		})
	}

	sort.Slice(zones, func(i, j int) bool {
		if zones[i].FrictionScore != zones[j].FrictionScore {
			return zones[i].FrictionScore > zones[j].FrictionScore
		}
		return zones[i].DestZip < zones[j].DestZip
	})
	if limit > 0 && len(zones) > limit {
		zones = zones[:limit]
	}

	return zones, nil
}
