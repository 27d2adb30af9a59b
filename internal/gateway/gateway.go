// Package gateway decides, per heatmap request, whether recently persisted
// scores already cover it or a fresh grid must be computed.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/saferoute-in/saferoute-go/internal/config"
	"github.com/saferoute-in/saferoute-go/internal/heatmap"
	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/repository"
	"github.com/saferoute-in/saferoute-go/internal/worker"
)

type Gateway struct {
	cfg       config.CacheConfig
	maxPoints int
	repo      repository.ScoreRepository
	generator *heatmap.Generator
	scoreFn   heatmap.ScoreFunc
	persist   *worker.Pool[*models.SafetyScore] // optional write-behind
	now       func() time.Time
}

func New(cfg config.CacheConfig, maxPoints int, repo repository.ScoreRepository, generator *heatmap.Generator, scoreFn heatmap.ScoreFunc, persist *worker.Pool[*models.SafetyScore]) *Gateway {
	return &Gateway{
		cfg:       cfg,
		maxPoints: maxPoints,
		repo:      repo,
		generator: generator,
		scoreFn:   scoreFn,
		persist:   persist,
		now:       time.Now,
	}
}

// Resolve serves a heatmap request either entirely from fresh cached
// records or entirely from a newly computed grid, never a mix. A store
// failure counts as "no cached data" and falls through to computation.
func (g *Gateway) Resolve(ctx context.Context, req models.HeatmapRequest) (*models.HeatmapResult, error) {
	cached, err := g.repo.ListScores(ctx, repository.ScoreFilter{
		Bounds:  req.Bounds,
		Context: req.Context,
		Since:   g.now().Add(-g.cfg.Freshness),
		Limit:   g.maxPoints,
	})
	if err != nil {
		slog.Warn("score store unavailable, computing fresh", "error", err)
		cached = nil
	}

	if len(cached) >= g.cfg.MinPoints {
		return &models.HeatmapResult{
			Points: cached,
			Stats:  models.ComputeHeatmapStats(cached),
			SourceBreakdown: models.SourceBreakdown{
				CachedCount: len(cached),
			},
		}, nil
	}

	points, err := g.generator.Generate(ctx, req, g.scoreFn)
	if err != nil {
		return nil, err
	}

	if g.persist != nil {
		dropped := 0
		for i := range points {
			p := points[i]
			if !g.persist.TrySubmit(&p) {
				dropped++
			}
		}
		if dropped > 0 {
			slog.Debug("persistence queue full", "dropped", dropped)
		}
	}

	return &models.HeatmapResult{
		Points: points,
		Stats:  models.ComputeHeatmapStats(points),
		SourceBreakdown: models.SourceBreakdown{
			FreshCount: len(points),
		},
	}, nil
}
