package repository

import (
	"context"
	"time"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

// ScoreFilter selects persisted safety scores for cache serving: inside the
// bounding box, matching the request context, computed after Since.
type ScoreFilter struct {
	Bounds  models.BoundingBox
	Context models.SafetyContext
	Since   time.Time
	Limit   int
}

type ScoreRepository interface {
	SaveScore(ctx context.Context, s *models.SafetyScore) error
	// ListScores returns matching records most-recent first.
	ListScores(ctx context.Context, filter ScoreFilter) ([]models.SafetyScore, error)
}

type ReportRepository interface {
	AddReport(ctx context.Context, r *models.Report) error
	// ListReportsNear returns reports within radiusMeters of center created
	// after since, newest first.
	ListReportsNear(ctx context.Context, center models.Coordinate, radiusMeters float64, since time.Time, limit int) ([]models.Report, error)
	CountReportsNear(ctx context.Context, center models.Coordinate, radiusMeters float64, since time.Time) (int, error)
}
