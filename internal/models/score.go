package models

import "time"

// FactorScores holds the four sub-scores blended into an overall safety
// score. All values are in [0,100]. Hazards is a risk magnitude: higher
// means more hazardous, and it is inverted before blending.
type FactorScores struct {
	Lighting        float64 `json:"lighting"`
	Footfall        float64 `json:"footfall"`
	Hazards         float64 `json:"hazards"`
	ProximityToHelp float64 `json:"proximity_to_help"`
}

// SafetyScore is one scored location. Records are immutable once computed;
// a recomputation produces a new record with a fresh ComputedAt.
type SafetyScore struct {
	Coordinate Coordinate    `json:"coordinate"`
	Overall    int           `json:"overall"` // 0-100, higher is safer
	Confidence float64       `json:"confidence"`
	Factors    FactorScores  `json:"factors"`
	Context    SafetyContext `json:"context"`
	ComputedAt time.Time     `json:"computed_at"`
}
