package models

import "fmt"

type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

type TravelerType string

const (
	TravelerPedestrian      TravelerType = "pedestrian"
	TravelerTwoWheeler      TravelerType = "two_wheeler"
	TravelerCyclist         TravelerType = "cyclist"
	TravelerPublicTransport TravelerType = "public_transport"
)

// SafetyContext qualifies a score request: the same spot rates differently
// for a pedestrian at night than for a two-wheeler at noon.
type SafetyContext struct {
	TimeOfDay    TimeOfDay    `json:"time_of_day"`
	TravelerType TravelerType `json:"traveler_type"`
}

// DefaultContext is what the API assumes when the caller omits context
// parameters.
func DefaultContext() SafetyContext {
	return SafetyContext{
		TimeOfDay:    TimeOfDayAfternoon,
		TravelerType: TravelerPedestrian,
	}
}

// ParseTimeOfDay validates a raw query value. Empty string means "use the
// default"; anything else must match a known period exactly.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	switch TimeOfDay(s) {
	case "":
		return TimeOfDayAfternoon, nil
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight:
		return TimeOfDay(s), nil
	default:
		return "", fmt.Errorf("unknown time of day %q", s)
	}
}

func ParseTravelerType(s string) (TravelerType, error) {
	switch TravelerType(s) {
	case "":
		return TravelerPedestrian, nil
	case TravelerPedestrian, TravelerTwoWheeler, TravelerCyclist, TravelerPublicTransport:
		return TravelerType(s), nil
	default:
		return "", fmt.Errorf("unknown traveler type %q", s)
	}
}
