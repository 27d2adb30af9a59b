package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/sources"
)

// stubPOISource returns a fixed count regardless of radius.
type stubPOISource struct {
	count int
	err   error
}

func (s *stubPOISource) CountNearby(ctx context.Context, c models.Coordinate, radiusMeters int) (int, error) {
	return s.count, s.err
}

type stubWeatherSource struct {
	weather sources.Weather
	err     error
}

func (s *stubWeatherSource) Current(ctx context.Context, c models.Coordinate) (sources.Weather, error) {
	return s.weather, s.err
}

var bengaluru = models.Coordinate{Latitude: 12.9720, Longitude: 77.5950}

func defaultContext() models.SafetyContext {
	return models.SafetyContext{
		TimeOfDay:    models.TimeOfDayAfternoon,
		TravelerType: models.TravelerPedestrian,
	}
}

func TestComputeScore_InvalidCoordinate(t *testing.T) {
	engine := NewEngine(DefaultConfig(), Deps{})

	cases := []models.Coordinate{
		{Latitude: 95, Longitude: 77.5},
		{Latitude: -91, Longitude: 0},
		{Latitude: 12.9, Longitude: 181},
		{Latitude: 12.9, Longitude: -180.5},
	}
	for _, c := range cases {
		_, err := engine.ComputeScore(context.Background(), c, defaultContext())
		var invalid *models.InvalidCoordinateError
		if !errors.As(err, &invalid) {
			t.Errorf("coordinate %+v: expected InvalidCoordinateError, got %v", c, err)
		}
	}
}

func TestComputeScore_NeutralBaseline(t *testing.T) {
	// No sources at all: every factor falls back to 50 and confidence sits
	// at its floor.
	engine := NewEngine(DefaultConfig(), Deps{})

	score, err := engine.ComputeScore(context.Background(), bengaluru, defaultContext())
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}

	// 0.3*50 + 0.25*50 + 0.2*(100-50) + 0.25*50 = 50, then +5 for afternoon.
	if score.Overall != 55 {
		t.Errorf("expected overall 55, got %d", score.Overall)
	}
	if score.Confidence != 0.1 {
		t.Errorf("expected floor confidence 0.1, got %v", score.Confidence)
	}
	if score.Factors.Lighting != 50 || score.Factors.Footfall != 50 ||
		score.Factors.Hazards != 50 || score.Factors.ProximityToHelp != 50 {
		t.Errorf("expected neutral factors, got %+v", score.Factors)
	}
}

func TestComputeScore_BoundsAndIdempotence(t *testing.T) {
	engine := NewEngine(DefaultConfig(), Deps{
		POIs:      &stubPOISource{count: 60},
		DarkSpots: sources.NewMunicipalRegistry(),
	})

	contexts := []models.SafetyContext{}
	for _, tod := range []models.TimeOfDay{models.TimeOfDayMorning, models.TimeOfDayAfternoon, models.TimeOfDayEvening, models.TimeOfDayNight} {
		for _, tt := range []models.TravelerType{models.TravelerPedestrian, models.TravelerTwoWheeler, models.TravelerCyclist, models.TravelerPublicTransport} {
			contexts = append(contexts, models.SafetyContext{TimeOfDay: tod, TravelerType: tt})
		}
	}

	coords := []models.Coordinate{
		bengaluru,
		{Latitude: -89.9, Longitude: 179.9},
		{Latitude: 0, Longitude: 0},
		{Latitude: 13.0827, Longitude: 80.2707},
	}

	for _, sctx := range contexts {
		for _, coord := range coords {
			first, err := engine.ComputeScore(context.Background(), coord, sctx)
			if err != nil {
				t.Fatalf("ComputeScore(%+v, %+v) failed: %v", coord, sctx, err)
			}
			if first.Overall < 0 || first.Overall > 100 {
				t.Errorf("overall %d outside [0,100] for %+v", first.Overall, sctx)
			}
			if first.Confidence < 0 || first.Confidence > 1 {
				t.Errorf("confidence %v outside [0,1]", first.Confidence)
			}

			second, err := engine.ComputeScore(context.Background(), coord, sctx)
			if err != nil {
				t.Fatalf("second ComputeScore failed: %v", err)
			}
			if first.Overall != second.Overall || first.Factors != second.Factors {
				t.Errorf("engine not idempotent for %+v: %d/%+v vs %d/%+v",
					sctx, first.Overall, first.Factors, second.Overall, second.Factors)
			}
		}
	}
}

func TestComputeScore_TimeOfDayDeltas(t *testing.T) {
	engine := NewEngine(DefaultConfig(), Deps{})

	expected := map[models.TimeOfDay]int{
		models.TimeOfDayMorning:   50,
		models.TimeOfDayAfternoon: 55,
		models.TimeOfDayEvening:   40,
		models.TimeOfDayNight:     30,
	}

	for tod, want := range expected {
		score, err := engine.ComputeScore(context.Background(), bengaluru, models.SafetyContext{
			TimeOfDay:    tod,
			TravelerType: models.TravelerPedestrian,
		})
		if err != nil {
			t.Fatalf("ComputeScore failed: %v", err)
		}
		if score.Overall != want {
			t.Errorf("%s: expected %d, got %d", tod, want, score.Overall)
		}
	}
}

func TestComputeScore_TravelerMultiplier(t *testing.T) {
	engine := NewEngine(DefaultConfig(), Deps{})

	// Baseline 50 * 0.95 + 5 = 52.5, rounded half-up to 53.
	score, err := engine.ComputeScore(context.Background(), bengaluru, models.SafetyContext{
		TimeOfDay:    models.TimeOfDayAfternoon,
		TravelerType: models.TravelerTwoWheeler,
	})
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if score.Overall != 53 {
		t.Errorf("expected 53 for two-wheeler, got %d", score.Overall)
	}

	// 50 * 0.90 + 5 = 50.
	score, err = engine.ComputeScore(context.Background(), bengaluru, models.SafetyContext{
		TimeOfDay:    models.TimeOfDayAfternoon,
		TravelerType: models.TravelerCyclist,
	})
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	if score.Overall != 50 {
		t.Errorf("expected 50 for cyclist, got %d", score.Overall)
	}
}

func TestComputeScore_LiveSourcesRaiseConfidence(t *testing.T) {
	engine := NewEngine(DefaultConfig(), Deps{
		POIs:      &stubPOISource{count: 60},
		DarkSpots: sources.NewMunicipalRegistryWith(nil),
	})

	score, err := engine.ComputeScore(context.Background(), bengaluru, defaultContext())
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}

	// Lighting, footfall, hazards and proximity all live: 0.1 + 0.9*4/4.
	if score.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", score.Confidence)
	}

	// 60 POIs: lighting 85, footfall 80, hazards 0 (no dark spots), proximity 90.
	// 0.3*85 + 0.25*80 + 0.2*100 + 0.25*90 = 88, +5 afternoon = 93.
	if score.Overall != 93 {
		t.Errorf("expected overall 93, got %d", score.Overall)
	}
}

func TestComputeScore_SourceErrorFallsBack(t *testing.T) {
	engine := NewEngine(DefaultConfig(), Deps{
		POIs: &stubPOISource{err: errors.New("overpass down")},
	})

	score, err := engine.ComputeScore(context.Background(), bengaluru, defaultContext())
	if err != nil {
		t.Fatalf("expected graceful fallback, got error: %v", err)
	}
	if score.Factors.Lighting != 50 || score.Factors.Footfall != 50 {
		t.Errorf("expected neutral factors on source error, got %+v", score.Factors)
	}
	if score.Confidence != 0.1 {
		t.Errorf("expected floor confidence, got %v", score.Confidence)
	}
}

func TestComputeScore_BadWeatherRaisesHazard(t *testing.T) {
	clear := NewEngine(DefaultConfig(), Deps{
		Weather: &stubWeatherSource{weather: sources.Weather{WeatherCode: 1}},
	})
	stormy := NewEngine(DefaultConfig(), Deps{
		Weather: &stubWeatherSource{weather: sources.Weather{WeatherCode: 95}},
	})

	clearScore, err := clear.ComputeScore(context.Background(), bengaluru, defaultContext())
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}
	stormScore, err := stormy.ComputeScore(context.Background(), bengaluru, defaultContext())
	if err != nil {
		t.Fatalf("ComputeScore failed: %v", err)
	}

	if stormScore.Factors.Hazards <= clearScore.Factors.Hazards {
		t.Errorf("storm hazards %v should exceed clear hazards %v",
			stormScore.Factors.Hazards, clearScore.Factors.Hazards)
	}
	if stormScore.Overall >= clearScore.Overall {
		t.Errorf("storm overall %d should be below clear overall %d",
			stormScore.Overall, clearScore.Overall)
	}
}
