package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

func (s *SQLiteDB) SaveScore(ctx context.Context, score *models.SafetyScore) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO safety_scores
			(id, latitude, longitude, overall, confidence,
			 lighting, footfall, hazards, proximity_to_help,
			 time_of_day, traveler_type, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		score.Coordinate.Latitude,
		score.Coordinate.Longitude,
		score.Overall,
		score.Confidence,
		score.Factors.Lighting,
		score.Factors.Footfall,
		score.Factors.Hazards,
		score.Factors.ProximityToHelp,
		string(score.Context.TimeOfDay),
		string(score.Context.TravelerType),
		score.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting safety score: %w", err)
	}
	return nil
}

func (s *SQLiteDB) ListScores(ctx context.Context, filter ScoreFilter) ([]models.SafetyScore, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT latitude, longitude, overall, confidence,
			lighting, footfall, hazards, proximity_to_help,
			time_of_day, traveler_type, computed_at
		FROM safety_scores
		WHERE latitude >= ? AND latitude <= ?
			AND longitude >= ? AND longitude <= ?
			AND time_of_day = ? AND traveler_type = ?
			AND computed_at >= ?
		ORDER BY computed_at DESC
		LIMIT ?`,
		filter.Bounds.South, filter.Bounds.North,
		filter.Bounds.West, filter.Bounds.East,
		string(filter.Context.TimeOfDay), string(filter.Context.TravelerType),
		filter.Since,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying safety scores: %w", err)
	}
	defer rows.Close()

	var scores []models.SafetyScore
	for rows.Next() {
		var sc models.SafetyScore
		var tod, traveler string
		if err := rows.Scan(
			&sc.Coordinate.Latitude, &sc.Coordinate.Longitude,
			&sc.Overall, &sc.Confidence,
			&sc.Factors.Lighting, &sc.Factors.Footfall,
			&sc.Factors.Hazards, &sc.Factors.ProximityToHelp,
			&tod, &traveler, &sc.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning safety score: %w", err)
		}
		sc.Context.TimeOfDay = models.TimeOfDay(tod)
		sc.Context.TravelerType = models.TravelerType(traveler)
		scores = append(scores, sc)
	}

	return scores, rows.Err()
}
