// scorecheck computes a single safety score from the command line without
// running the server. Handy for sanity-checking weight changes.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/saferoute-in/saferoute-go/internal/config"
	"github.com/saferoute-in/saferoute-go/internal/logging"
	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/scoring"
	"github.com/saferoute-in/saferoute-go/internal/sources"
)

func main() {
	lat := flag.Float64("lat", 12.9716, "latitude")
	lng := flag.Float64("lng", 77.5946, "longitude")
	timeOfDay := flag.String("time", "afternoon", "time of day (morning|afternoon|evening|night)")
	traveler := flag.String("traveler", "pedestrian", "traveler type (pedestrian|two_wheeler|cyclist|public_transport)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	tod, err := models.ParseTimeOfDay(*timeOfDay)
	if err != nil {
		logging.Fatalf("Invalid time of day: %v", err)
	}
	tt, err := models.ParseTravelerType(*traveler)
	if err != nil {
		logging.Fatalf("Invalid traveler type: %v", err)
	}

	deps := scoring.Deps{
		DarkSpots: sources.NewMunicipalRegistry(),
	}
	if cfg.Sources.OverpassEnabled {
		deps.POIs = sources.NewOverpassClient(cfg.Sources.OverpassURL, cfg.Sources.MemoTTL)
	}
	if cfg.Sources.OpenMeteoEnabled {
		deps.Weather = sources.NewOpenMeteoClient(cfg.Sources.OpenMeteoURL)
	}

	engine := scoring.NewEngine(scoring.DefaultConfig(), deps)

	score, err := engine.ComputeScore(context.Background(),
		models.Coordinate{Latitude: *lat, Longitude: *lng},
		models.SafetyContext{TimeOfDay: tod, TravelerType: tt},
	)
	if err != nil {
		logging.Fatalf("Failed to compute score: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(score)
}
