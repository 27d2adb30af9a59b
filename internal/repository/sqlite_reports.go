package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/spatial"
)

func (s *SQLiteDB) AddReport(ctx context.Context, r *models.Report) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, latitude, longitude, category, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Coordinate.Latitude,
		r.Coordinate.Longitude,
		string(r.Category),
		r.Description,
		r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting report: %w", err)
	}
	return nil
}

// ListReportsNear prefilters by bounding box in SQL, then refines with the
// exact haversine distance. SQLite has no native geo operators, so the box
// does the heavy lifting and the refine pass stays small.
func (s *SQLiteDB) ListReportsNear(ctx context.Context, center models.Coordinate, radiusMeters float64, since time.Time, limit int) ([]models.Report, error) {
	if limit <= 0 {
		limit = 100
	}
	box := spatial.BoundsAround(center, radiusMeters)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, latitude, longitude, category, description, created_at
		FROM reports
		WHERE latitude >= ? AND latitude <= ?
			AND longitude >= ? AND longitude <= ?
			AND created_at >= ?
		ORDER BY created_at DESC`,
		box.South, box.North, box.West, box.East, since,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var r models.Report
		var category string
		if err := rows.Scan(
			&r.ID, &r.Coordinate.Latitude, &r.Coordinate.Longitude,
			&category, &r.Description, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning report: %w", err)
		}
		r.Category = models.ReportCategory(category)

		if spatial.HaversineDistance(center, r.Coordinate) > radiusMeters {
			continue
		}
		reports = append(reports, r)
		if len(reports) >= limit {
			break
		}
	}

	return reports, rows.Err()
}

func (s *SQLiteDB) CountReportsNear(ctx context.Context, center models.Coordinate, radiusMeters float64, since time.Time) (int, error) {
	reports, err := s.ListReportsNear(ctx, center, radiusMeters, since, 1000)
	if err != nil {
		return 0, err
	}
	return len(reports), nil
}
