package service

import (
	"math"
	"sort"

	"github.com/GeyBee/skincare-saas/internal"
)

// Trend buckets produced by AnalyzeProgress.
const (
	TrendInsufficientData       = "insufficient_data"
	TrendNotEnoughData          = "not_enough_data"
	TrendSignificantImprovement = "significant_improvement"
	TrendModerateImprovement    = "moderate_improvement"
	TrendStable                 = "stable"
	TrendDeclining              = "declining"
)

// recentWindow is the number of trailing check-ins compared against all
// earlier history.
const recentWindow = 7

type ProgressAnalysis struct {
	Trend            string  `json:"trend"`
	ImprovementScore float64 `json:"improvement_score"`
	Confidence       int     `json:"confidence"`
	RecentAverage    float64 `json:"recent_average"`
	PreviousAverage  float64 `json:"previous_average"`
	TotalDataPoints  int     `json:"total_data_points"`
	PhotoCount       int     `json:"photo_count"`
}

// AnalyzeProgress classifies the recent-vs-historical skin condition trend.
// The last recentWindow check-ins (by created_at) are compared against
// everything before them; with no earlier history only a low-confidence
// sentinel is returned.
func AnalyzeProgress(checkins []internal.CheckIn, photoCount int) ProgressAnalysis {
	if len(checkins) == 0 {
		return ProgressAnalysis{Trend: TrendInsufficientData, Confidence: 0}
	}

	ordered := sortedByCreatedAt(checkins)
	split := len(ordered) - recentWindow
	if split < 0 {
		split = 0
	}
	recent := ordered[split:]
	prior := ordered[:split]

	if len(prior) == 0 {
		return ProgressAnalysis{Trend: TrendNotEnoughData, Confidence: 30}
	}

	recentAvg := averageCondition(recent)
	priorAvg := averageCondition(prior)
	improvement := recentAvg - priorAvg
	n := len(ordered)

	var trend string
	var confidence int
	switch {
	case improvement > 1:
		trend = TrendSignificantImprovement
		confidence = capConfidence(90, 70+n*2)
	case improvement > 0.3:
		trend = TrendModerateImprovement
		confidence = capConfidence(80, 60+n*2)
	case improvement > -0.3:
		trend = TrendStable
		confidence = capConfidence(75, 50+n*2)
	default:
		trend = TrendDeclining
		confidence = capConfidence(85, 65+n*2)
	}

	return ProgressAnalysis{
		Trend:            trend,
		ImprovementScore: round2(improvement),
		Confidence:       confidence,
		RecentAverage:    round1(recentAvg),
		PreviousAverage:  round1(priorAvg),
		TotalDataPoints:  n,
		PhotoCount:       photoCount,
	}
}

func sortedByCreatedAt(checkins []internal.CheckIn) []internal.CheckIn {
	ordered := make([]internal.CheckIn, len(checkins))
	copy(ordered, checkins)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}

func averageCondition(checkins []internal.CheckIn) float64 {
	sum := 0
	for _, c := range checkins {
		sum += c.SkinCondition
	}
	return float64(sum) / float64(len(checkins))
}

func capConfidence(limit, value int) int {
	if value > limit {
		return limit
	}
	return value
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
