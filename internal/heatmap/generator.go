// Package heatmap samples a bounded grid of safety scores over a map
// region for client-side heat layers.
package heatmap

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/saferoute-in/saferoute-go/internal/config"
	"github.com/saferoute-in/saferoute-go/internal/models"
)

const (
	minZoom = 1
	maxZoom = 20

	fallbackScore      = 50
	fallbackConfidence = 0.2
)

// ScoreFunc rates a single grid cell. The generator does not care whether
// the implementation computes or looks the score up.
type ScoreFunc func(ctx context.Context, c models.Coordinate, sctx models.SafetyContext) (*models.SafetyScore, error)

type Generator struct {
	cfg config.HeatmapConfig
}

func NewGenerator(cfg config.HeatmapConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate validates the request, lays out the sample grid and scores every
// cell. Cells are scored concurrently; a cell whose scoring rejects the
// coordinate yields a neutral fallback point instead of failing the batch.
// Points come back in row-major order (south-to-north, west-to-east), but
// callers must not attach meaning to the ordering.
func (g *Generator) Generate(ctx context.Context, req models.HeatmapRequest, scoreFn ScoreFunc) ([]models.SafetyScore, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	latSamples, lngSamples := g.gridSamples(req.Bounds, req.Zoom)
	latStep := (req.Bounds.North - req.Bounds.South) / float64(latSamples-1)
	lngStep := (req.Bounds.East - req.Bounds.West) / float64(lngSamples-1)

	points := make([]models.SafetyScore, latSamples*lngSamples)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0) * 4)

	for i := 0; i < latSamples; i++ {
		for j := 0; j < lngSamples; j++ {
			idx := i*lngSamples + j
			coord := models.Coordinate{
				Latitude:  req.Bounds.South + float64(i)*latStep,
				Longitude: req.Bounds.West + float64(j)*lngStep,
			}
			group.Go(func() error {
				score, err := scoreFn(gctx, coord, req.Context)
				if err != nil {
					slog.Warn("cell scoring failed, using fallback", "lat", coord.Latitude, "lng", coord.Longitude, "error", err)
					points[idx] = fallbackPoint(coord, req.Context)
					return nil
				}
				points[idx] = *score
				return nil
			})
		}
	}

	// Workers never return errors; Wait is only a join point.
	_ = group.Wait()

	return points, nil
}

// gridSamples sizes the grid. The target cell shrinks with zoom
// (cell = baseCell / 2^(zoom-referenceZoom), floored at minCell), then
// per-axis sample counts are capped at floor(sqrt(maxPoints)) so the total
// never exceeds the point budget no matter how large or zoomed-in the
// request is. Both axis edges are always sampled.
func (g *Generator) gridSamples(b models.BoundingBox, zoom int) (latSamples, lngSamples int) {
	cell := g.cfg.BaseCellDeg / math.Pow(2, float64(zoom-g.cfg.ReferenceZoom))
	if cell < g.cfg.MinCellDeg {
		cell = g.cfg.MinCellDeg
	}

	axisCap := int(math.Floor(math.Sqrt(float64(g.cfg.MaxPoints))))
	if axisCap < 2 {
		axisCap = 2
	}

	latSamples = int(math.Ceil((b.North-b.South)/cell)) + 1
	lngSamples = int(math.Ceil((b.East-b.West)/cell)) + 1

	if latSamples < 2 {
		latSamples = 2
	}
	if lngSamples < 2 {
		lngSamples = 2
	}
	if latSamples > axisCap {
		latSamples = axisCap
	}
	if lngSamples > axisCap {
		lngSamples = axisCap
	}
	return latSamples, lngSamples
}

func validateRequest(req models.HeatmapRequest) error {
	if req.Zoom < minZoom || req.Zoom > maxZoom {
		return &models.InvalidRequestError{Reason: fmt.Sprintf("zoom %d outside [%d,%d]", req.Zoom, minZoom, maxZoom)}
	}
	if !req.Bounds.Valid() {
		return &models.InvalidRequestError{
			Reason: fmt.Sprintf("malformed bounds: north=%v south=%v east=%v west=%v",
				req.Bounds.North, req.Bounds.South, req.Bounds.East, req.Bounds.West),
		}
	}
	return nil
}

func fallbackPoint(c models.Coordinate, sctx models.SafetyContext) models.SafetyScore {
	return models.SafetyScore{
		Coordinate: c,
		Overall:    fallbackScore,
		Confidence: fallbackConfidence,
		Factors: models.FactorScores{
			Lighting:        fallbackScore,
			Footfall:        fallbackScore,
			Hazards:         fallbackScore,
			ProximityToHelp: fallbackScore,
		},
		Context:    sctx,
		ComputedAt: time.Now(),
	}
}
