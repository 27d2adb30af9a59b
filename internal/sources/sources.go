// Package sources provides the external data feeds the score engine blends
// into safety factors: OpenStreetMap POI density via Overpass, current
// weather via Open-Meteo, and the municipal dark-spot registry. Every
// source is optional; the engine falls back to a neutral baseline when one
// is disabled or unreachable.
package sources

import (
	"context"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

// POISource reports how many points of interest (shops, amenities, tourism
// features) lie within a radius of a coordinate. POI density is the proxy
// for footfall, street lighting and proximity to help.
type POISource interface {
	CountNearby(ctx context.Context, c models.Coordinate, radiusMeters int) (int, error)
}

type Weather struct {
	Temperature float64
	WeatherCode int // WMO code; >50 means rain/snow/storm conditions
}

type WeatherSource interface {
	Current(ctx context.Context, c models.Coordinate) (Weather, error)
}

// DarkSpotSource exposes municipal records of poorly lit locations.
type DarkSpotSource interface {
	CountNear(c models.Coordinate, radiusMeters float64) int
}
