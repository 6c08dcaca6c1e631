package service

import (
	"testing"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/stretchr/testify/assert"
)

// makeHistory builds check-ins with ascending created_at, one per day.
func makeHistory(conditions ...int) []internal.CheckIn {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	checkins := make([]internal.CheckIn, len(conditions))
	for i, cond := range conditions {
		ts := base.AddDate(0, 0, i)
		checkins[i] = internal.CheckIn{
			ID:            "u1_" + ts.Format("2006-01-02"),
			UserID:        "u1",
			Date:          ts.Format("2006-01-02"),
			SkinCondition: cond,
			StressLevel:   5,
			SleepHours:    7,
			CreatedAt:     ts,
		}
	}
	return checkins
}

func TestAnalyzeProgressEmptyHistory(t *testing.T) {
	result := AnalyzeProgress(nil, 0)
	assert.Equal(t, TrendInsufficientData, result.Trend)
	assert.Equal(t, 0, result.Confidence)
}

func TestAnalyzeProgressNoPriorWindow(t *testing.T) {
	// Up to 7 check-ins there is nothing to compare against.
	for n := 1; n <= 7; n++ {
		conditions := make([]int, n)
		for i := range conditions {
			conditions[i] = 5
		}
		result := AnalyzeProgress(makeHistory(conditions...), 0)
		assert.Equal(t, TrendNotEnoughData, result.Trend, "n=%d", n)
		assert.Equal(t, 30, result.Confidence, "n=%d", n)
	}
}

func TestAnalyzeProgressSignificantImprovement(t *testing.T) {
	// prior [4 4 4] avg 4.0, recent avg 40/7 ≈ 5.71 → improvement ≈ 1.71
	history := makeHistory(4, 4, 4, 6, 6, 6, 5, 5, 6, 6)
	result := AnalyzeProgress(history, 3)

	assert.Equal(t, TrendSignificantImprovement, result.Trend)
	assert.Equal(t, 90, result.Confidence) // min(90, 70+2*10)
	assert.Equal(t, 1.71, result.ImprovementScore)
	assert.Equal(t, 5.7, result.RecentAverage)
	assert.Equal(t, 4.0, result.PreviousAverage)
	assert.Equal(t, 10, result.TotalDataPoints)
	assert.Equal(t, 3, result.PhotoCount)
}

func TestAnalyzeProgressModerateImprovement(t *testing.T) {
	// prior avg 5.0, recent avg 39/7 ≈ 5.57 → improvement ≈ 0.57
	history := makeHistory(5, 5, 5, 6, 6, 6, 5, 5, 6, 5)
	result := AnalyzeProgress(history, 0)

	assert.Equal(t, TrendModerateImprovement, result.Trend)
	assert.Equal(t, 80, result.Confidence) // min(80, 60+2*10)
}

func TestAnalyzeProgressStable(t *testing.T) {
	// prior avg 5.0, recent avg 36/7 ≈ 5.14 → improvement ≈ 0.14
	history := makeHistory(5, 5, 5, 5, 5, 5, 5, 5, 6, 5)
	result := AnalyzeProgress(history, 0)

	assert.Equal(t, TrendStable, result.Trend)
	assert.Equal(t, 70, result.Confidence) // min(75, 50+2*10)
}

func TestAnalyzeProgressDeclining(t *testing.T) {
	history := makeHistory(8, 8, 8, 5, 5, 5, 5, 5, 5, 5)
	result := AnalyzeProgress(history, 0)

	assert.Equal(t, TrendDeclining, result.Trend)
	assert.Equal(t, 85, result.Confidence) // min(85, 65+2*10)
	assert.Equal(t, -3.0, result.ImprovementScore)
}

func TestAnalyzeProgressSortsByCreatedAt(t *testing.T) {
	history := makeHistory(4, 4, 4, 6, 6, 6, 5, 5, 6, 6)
	shuffled := []internal.CheckIn{
		history[9], history[2], history[5], history[0], history[7],
		history[4], history[1], history[8], history[3], history[6],
	}
	assert.Equal(t, AnalyzeProgress(history, 0), AnalyzeProgress(shuffled, 0))
}

func TestCalculateCheckInStats(t *testing.T) {
	history := makeHistory(4, 6, 8)
	stats := CalculateCheckInStats(history, 2)

	assert.Equal(t, 3, stats.TotalCheckIns)
	assert.Equal(t, 2, stats.TotalPhotos)
	assert.Equal(t, 6.0, stats.AvgSkinCondition)
	assert.Equal(t, 5.0, stats.AvgStressLevel)
	assert.Equal(t, "amélioration", stats.SkinTrend)
	assert.Equal(t, 8, stats.BestSkinDay)
	assert.Equal(t, 4, stats.WorstSkinDay)
	assert.Equal(t, 10.0, stats.ConsistencyScore) // 3/30 days
}

func TestCalculateCheckInStatsEmpty(t *testing.T) {
	stats := CalculateCheckInStats(nil, 1)
	assert.Equal(t, 0, stats.TotalCheckIns)
	assert.Equal(t, 1, stats.TotalPhotos)
	assert.Equal(t, "", stats.SkinTrend)
}
