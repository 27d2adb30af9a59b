package scoring

import (
	"context"
	"log/slog"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

// Each factor derivation returns its score in [0,100] and whether it was
// computed from live data. A false second value means the neutral baseline
// was substituted, which drags down the score's confidence.

// lightingFactor estimates street illumination from POI density (lit
// commercial frontage) minus municipal dark-spot penalties. Evening and
// night shrink whatever illumination the area has.
func (e *Engine) lightingFactor(ctx context.Context, c models.Coordinate, tod models.TimeOfDay) (float64, bool) {
	if e.deps.POIs == nil {
		return e.cfg.NeutralBaseline, false
	}

	poiCount, err := e.deps.POIs.CountNearby(ctx, c, 300)
	if err != nil {
		slog.Warn("lighting source unavailable", "error", err)
		return e.cfg.NeutralBaseline, false
	}

	base := 45.0
	switch {
	case poiCount > 50:
		base += 40 // dense commercial frontage
	case poiCount > 20:
		base += 25
	case poiCount > 5:
		base += 10
	}

	if e.deps.DarkSpots != nil {
		base -= float64(e.deps.DarkSpots.CountNear(c, 500)) * 10
	}

	switch tod {
	case models.TimeOfDayNight:
		base *= 0.7
	case models.TimeOfDayEvening:
		base *= 0.85
	}

	return clamp(base, 0, 100), true
}

// footfallFactor maps POI density onto pedestrian activity bands.
func (e *Engine) footfallFactor(ctx context.Context, c models.Coordinate) (float64, bool) {
	if e.deps.POIs == nil {
		return e.cfg.NeutralBaseline, false
	}

	poiCount, err := e.deps.POIs.CountNearby(ctx, c, 200)
	if err != nil {
		slog.Warn("footfall source unavailable", "error", err)
		return e.cfg.NeutralBaseline, false
	}

	switch {
	case poiCount > 100:
		return 95, true
	case poiCount > 50:
		return 80, true
	case poiCount > 20:
		return 65, true
	case poiCount > 5:
		return 45, true
	default:
		return 25, true
	}
}

// hazardFactor accumulates risk: municipal dark spots, active bad weather
// and recent community reports all add to it. Returned as a risk magnitude
// in [0,100]; the engine inverts it when blending.
func (e *Engine) hazardFactor(ctx context.Context, c models.Coordinate) (float64, bool) {
	risk := 0.0
	live := false

	if e.deps.DarkSpots != nil {
		risk += float64(e.deps.DarkSpots.CountNear(c, 300)) * 15
		live = true
	}

	if e.deps.Weather != nil {
		w, err := e.deps.Weather.Current(ctx, c)
		if err != nil {
			slog.Warn("weather source unavailable", "error", err)
		} else {
			if w.WeatherCode > 50 {
				risk += 20
			}
			live = true
		}
	}

	if e.deps.Reports != nil {
		count, err := e.deps.Reports.CountReportsNear(ctx, c, 500, e.now().Add(-reportWindow))
		if err != nil {
			slog.Warn("report lookup failed", "error", err)
		} else {
			risk += float64(count) * 10
			live = true
		}
	}

	if !live {
		return e.cfg.NeutralBaseline, false
	}
	return clamp(risk, 0, 100), true
}

// proximityFactor approximates distance to help from the density of
// amenities (which include police stations, hospitals and pharmacies)
// within a kilometer.
func (e *Engine) proximityFactor(ctx context.Context, c models.Coordinate) (float64, bool) {
	if e.deps.POIs == nil {
		return e.cfg.NeutralBaseline, false
	}

	count, err := e.deps.POIs.CountNearby(ctx, c, 1000)
	if err != nil {
		slog.Warn("proximity source unavailable", "error", err)
		return e.cfg.NeutralBaseline, false
	}

	switch {
	case count > 10:
		return 90, true
	case count > 5:
		return 75, true
	case count > 2:
		return 60, true
	case count > 0:
		return 40, true
	default:
		return 20, true
	}
}
