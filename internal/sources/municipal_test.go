package sources

import (
	"testing"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

func TestMunicipalRegistry_CountNear(t *testing.T) {
	registry := NewMunicipalRegistryWith([]DarkSpot{
		{Coordinate: models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}, City: "Bengaluru"},
		{Coordinate: models.Coordinate{Latitude: 12.9720, Longitude: 77.5950}, City: "Bengaluru"}, // ~60m away
		{Coordinate: models.Coordinate{Latitude: 13.0827, Longitude: 80.2707}, City: "Chennai"},   // ~290km away
	})

	center := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}

	if got := registry.CountNear(center, 300); got != 2 {
		t.Errorf("expected 2 dark spots within 300m, got %d", got)
	}
	if got := registry.CountNear(center, 10); got != 1 {
		t.Errorf("expected 1 dark spot within 10m, got %d", got)
	}
	if got := registry.CountNear(models.Coordinate{Latitude: 28.6, Longitude: 77.2}, 300); got != 0 {
		t.Errorf("expected no dark spots near Delhi test point, got %d", got)
	}
}

func TestMunicipalRegistry_SeedCoversPilotCities(t *testing.T) {
	registry := NewMunicipalRegistry()

	cities := map[string]models.Coordinate{
		"Bengaluru": {Latitude: 12.9716, Longitude: 77.5946},
		"Chennai":   {Latitude: 13.0827, Longitude: 80.2707},
		"Mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
		"Delhi":     {Latitude: 28.6139, Longitude: 77.2090},
		"Hyderabad": {Latitude: 17.3850, Longitude: 78.4867},
	}

	for city, center := range cities {
		if got := registry.CountNear(center, 1000); got == 0 {
			t.Errorf("expected seed dark spots near %s", city)
		}
	}
}
