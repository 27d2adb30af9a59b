package api

import (
	"github.com/saferoute-in/saferoute-go/internal/models"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func toGeoJSON(points []models.SafetyScore) FeatureCollection {
	features := make([]Feature, 0, len(points))

	for _, p := range points {
		f := Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{p.Coordinate.Longitude, p.Coordinate.Latitude},
			},
			Properties: map[string]any{
				"overall":       p.Overall,
				"confidence":    p.Confidence,
				"lighting":      p.Factors.Lighting,
				"footfall":      p.Factors.Footfall,
				"hazards":       p.Factors.Hazards,
				"proximity":     p.Factors.ProximityToHelp,
				"time_of_day":   p.Context.TimeOfDay,
				"traveler_type": p.Context.TravelerType,
				"computed_at":   p.ComputedAt,
			},
		}
		features = append(features, f)
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
