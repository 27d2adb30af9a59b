package models

import "time"

type ReportCategory string

const (
	ReportCategoryPoorLighting ReportCategory = "poor_lighting"
	ReportCategoryHarassment   ReportCategory = "harassment"
	ReportCategoryRoadDamage   ReportCategory = "road_damage"
	ReportCategoryStrayAnimals ReportCategory = "stray_animals"
	ReportCategoryOther        ReportCategory = "other"
)

func ParseReportCategory(s string) (ReportCategory, error) {
	switch ReportCategory(s) {
	case ReportCategoryPoorLighting, ReportCategoryHarassment,
		ReportCategoryRoadDamage, ReportCategoryStrayAnimals, ReportCategoryOther:
		return ReportCategory(s), nil
	default:
		return "", &InvalidRequestError{Reason: "unknown report category " + s}
	}
}

// Report is a community-submitted hazard observation. Recent reports near a
// coordinate raise its hazard factor.
type Report struct {
	ID          string         `json:"id"`
	Coordinate  Coordinate     `json:"coordinate"`
	Category    ReportCategory `json:"category"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
}
