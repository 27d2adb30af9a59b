package sources

import (
	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/spatial"
)

type DarkSpot struct {
	Coordinate models.Coordinate
	City       string
	Reason     string
}

// MunicipalRegistry is an in-process table of municipally reported dark
// spots. Real corporations publish these lists as CSV dumps; until an
// ingestion path exists the seed data covers the pilot cities.
type MunicipalRegistry struct {
	spots []DarkSpot
}

func NewMunicipalRegistry() *MunicipalRegistry {
	return &MunicipalRegistry{spots: seedDarkSpots}
}

// NewMunicipalRegistryWith builds a registry from explicit records, used by
// tests and future CSV loaders.
func NewMunicipalRegistryWith(spots []DarkSpot) *MunicipalRegistry {
	return &MunicipalRegistry{spots: spots}
}

func (m *MunicipalRegistry) CountNear(c models.Coordinate, radiusMeters float64) int {
	count := 0
	for _, spot := range m.spots {
		if spatial.HaversineDistance(c, spot.Coordinate) <= radiusMeters {
			count++
		}
	}
	return count
}

var seedDarkSpots = []DarkSpot{
	{Coordinate: models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}, City: "Bengaluru", Reason: "Poorly lit street"},
	{Coordinate: models.Coordinate{Latitude: 12.9352, Longitude: 77.6245}, City: "Bengaluru", Reason: "Streetlights off after midnight"},
	{Coordinate: models.Coordinate{Latitude: 13.0827, Longitude: 80.2707}, City: "Chennai", Reason: "No streetlights"},
	{Coordinate: models.Coordinate{Latitude: 13.0475, Longitude: 80.2090}, City: "Chennai", Reason: "Unlit service road"},
	{Coordinate: models.Coordinate{Latitude: 19.0760, Longitude: 72.8777}, City: "Mumbai", Reason: "Broken streetlights"},
	{Coordinate: models.Coordinate{Latitude: 28.6139, Longitude: 77.2090}, City: "Delhi", Reason: "Dark underpass"},
	{Coordinate: models.Coordinate{Latitude: 17.3850, Longitude: 78.4867}, City: "Hyderabad", Reason: "Poorly lit flyover approach"},
}
