package models

type HeatmapRequest struct {
	Bounds  BoundingBox   `json:"bounds"`
	Zoom    int           `json:"zoom"` // 1-20
	Context SafetyContext `json:"context"`
}

// HeatmapStats summarizes a point set for map legends.
type HeatmapStats struct {
	AverageScore  float64 `json:"average_score"`
	MaxScore      int     `json:"max_score"`
	MinScore      int     `json:"min_score"`
	HighRiskCount int     `json:"high_risk_count"` // overall < 40
	SafeCount     int     `json:"safe_count"`      // overall >= 70
}

// SourceBreakdown records where a result's points came from. The gateway
// never mixes: one of the two counts is always zero.
type SourceBreakdown struct {
	CachedCount int `json:"cached_count"`
	FreshCount  int `json:"fresh_count"`
}

type HeatmapResult struct {
	Points          []SafetyScore   `json:"points"`
	Stats           HeatmapStats    `json:"stats"`
	SourceBreakdown SourceBreakdown `json:"source_breakdown"`
}

// ComputeHeatmapStats aggregates over the returned point set. Empty input
// yields zeroed stats.
func ComputeHeatmapStats(points []SafetyScore) HeatmapStats {
	if len(points) == 0 {
		return HeatmapStats{}
	}

	stats := HeatmapStats{
		MaxScore: points[0].Overall,
		MinScore: points[0].Overall,
	}
	sum := 0
	for _, p := range points {
		sum += p.Overall
		if p.Overall > stats.MaxScore {
			stats.MaxScore = p.Overall
		}
		if p.Overall < stats.MinScore {
			stats.MinScore = p.Overall
		}
		if p.Overall < 40 {
			stats.HighRiskCount++
		}
		if p.Overall >= 70 {
			stats.SafeCount++
		}
	}
	stats.AverageScore = float64(sum) / float64(len(points))
	return stats
}
