package scoring

import "github.com/saferoute-in/saferoute-go/internal/models"

// Config is the scoring policy: blend weights, context adjustments and
// fallback behavior. It is immutable once handed to an engine, so policy
// changes never require touching engine internals.
type Config struct {
	// Blend weights, must sum to 1 with every term non-negative.
	WeightLighting  float64
	WeightFootfall  float64
	WeightHazards   float64
	WeightProximity float64

	// Flat adjustments applied to the combined score per time of day.
	DeltaMorning   float64
	DeltaAfternoon float64
	DeltaEvening   float64
	DeltaNight     float64

	// Traveler-type multipliers applied before the time adjustment.
	MultiplierTwoWheeler float64
	MultiplierCyclist    float64

	// NeutralBaseline substitutes for any factor whose data source is
	// unavailable.
	NeutralBaseline float64

	// ConfidenceFloor is the confidence when every factor fell back.
	ConfidenceFloor float64
}

func DefaultConfig() Config {
	return Config{
		WeightLighting:       0.30,
		WeightFootfall:       0.25,
		WeightHazards:        0.20,
		WeightProximity:      0.25,
		DeltaMorning:         0,
		DeltaAfternoon:       5,
		DeltaEvening:         -10,
		DeltaNight:           -20,
		MultiplierTwoWheeler: 0.95,
		MultiplierCyclist:    0.90,
		NeutralBaseline:      50,
		ConfidenceFloor:      0.1,
	}
}

func (c Config) timeDelta(t models.TimeOfDay) float64 {
	switch t {
	case models.TimeOfDayMorning:
		return c.DeltaMorning
	case models.TimeOfDayEvening:
		return c.DeltaEvening
	case models.TimeOfDayNight:
		return c.DeltaNight
	default:
		return c.DeltaAfternoon
	}
}

func (c Config) travelerMultiplier(t models.TravelerType) float64 {
	switch t {
	case models.TravelerTwoWheeler:
		return c.MultiplierTwoWheeler
	case models.TravelerCyclist:
		return c.MultiplierCyclist
	default:
		return 1.0
	}
}
