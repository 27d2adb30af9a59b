// Package scoring computes location safety scores by blending lighting,
// footfall, hazard and proximity-to-help factors derived from POI density,
// municipal dark-spot records, weather and community reports.
package scoring

import (
	"context"
	"math"
	"time"

	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/repository"
	"github.com/saferoute-in/saferoute-go/internal/sources"
)

const reportWindow = 24 * time.Hour

// Deps are the factor data sources. Any of them may be nil; the matching
// factors then fall back to the neutral baseline and lower the score's
// confidence.
type Deps struct {
	POIs      sources.POISource
	Weather   sources.WeatherSource
	DarkSpots sources.DarkSpotSource
	Reports   repository.ReportRepository
}

type Engine struct {
	cfg  Config
	deps Deps
	now  func() time.Time
}

func NewEngine(cfg Config, deps Deps) *Engine {
	return &Engine{
		cfg:  cfg,
		deps: deps,
		now:  time.Now,
	}
}

// ComputeScore rates one coordinate for one context. It never fails for a
// well-formed coordinate: any source outage degrades to the neutral
// baseline, so map rendering always gets a point per requested cell.
func (e *Engine) ComputeScore(ctx context.Context, coord models.Coordinate, sctx models.SafetyContext) (*models.SafetyScore, error) {
	if !coord.Valid() {
		return nil, &models.InvalidCoordinateError{Coordinate: coord}
	}

	lighting, lightingLive := e.lightingFactor(ctx, coord, sctx.TimeOfDay)
	footfall, footfallLive := e.footfallFactor(ctx, coord)
	hazards, hazardsLive := e.hazardFactor(ctx, coord)
	proximity, proximityLive := e.proximityFactor(ctx, coord)

	weighted := e.cfg.WeightLighting*lighting +
		e.cfg.WeightFootfall*footfall +
		e.cfg.WeightHazards*(100-hazards) +
		e.cfg.WeightProximity*proximity

	weighted *= e.cfg.travelerMultiplier(sctx.TravelerType)
	weighted += e.cfg.timeDelta(sctx.TimeOfDay)

	// Round half-up after clamping.
	overall := int(math.Floor(clamp(weighted, 0, 100) + 0.5))

	live := 0
	for _, ok := range []bool{lightingLive, footfallLive, hazardsLive, proximityLive} {
		if ok {
			live++
		}
	}
	confidence := e.cfg.ConfidenceFloor + (1-e.cfg.ConfidenceFloor)*float64(live)/4

	return &models.SafetyScore{
		Coordinate: coord,
		Overall:    overall,
		Confidence: confidence,
		Factors: models.FactorScores{
			Lighting:        lighting,
			Footfall:        footfall,
			Hazards:         hazards,
			ProximityToHelp: proximity,
		},
		Context:    sctx,
		ComputedAt: e.now(),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
