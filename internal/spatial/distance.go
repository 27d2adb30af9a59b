// Package spatial holds the small amount of geographic math the service
// needs: great-circle distances and search boxes around a point.
package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

const EarthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance between two points
// in meters.
func HaversineDistance(a, b models.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// BoundsAround returns a bounding box that fully contains the circle of
// radiusMeters around center. Used as a cheap SQL prefilter before the
// exact haversine check. Near the poles the longitude span degenerates, so
// it is clamped to the full range.
func BoundsAround(center models.Coordinate, radiusMeters float64) models.BoundingBox {
	latDelta := radiusMeters / EarthRadiusMeters * 180 / math.Pi

	cosLat := math.Cos(center.Latitude * math.Pi / 180)
	lngDelta := 180.0
	if cosLat > 1e-9 {
		lngDelta = latDelta / cosLat
	}

	return models.BoundingBox{
		North: math.Min(center.Latitude+latDelta, 90),
		South: math.Max(center.Latitude-latDelta, -90),
		East:  math.Min(center.Longitude+lngDelta, 180),
		West:  math.Max(center.Longitude-lngDelta, -180),
	}
}
