package service

import "github.com/GeyBee/skincare-saas/internal"

type CheckInStats struct {
	TotalCheckIns    int     `json:"total_checkins"`
	TotalPhotos      int     `json:"total_photos"`
	AvgSkinCondition float64 `json:"avg_skin_condition"`
	AvgStressLevel   float64 `json:"avg_stress_level"`
	SkinTrend        string  `json:"skin_trend"`
	BestSkinDay      int     `json:"best_skin_day"`
	WorstSkinDay     int     `json:"worst_skin_day"`
	ConsistencyScore float64 `json:"consistency_score"`
}

// CalculateCheckInStats summarizes a user's history for the analytics view.
// Consistency is measured against a 30-day month.
func CalculateCheckInStats(checkins []internal.CheckIn, photoCount int) CheckInStats {
	ordered := sortedByCreatedAt(checkins)
	n := len(ordered)
	if n == 0 {
		return CheckInStats{TotalPhotos: photoCount}
	}

	sumCondition, sumStress := 0, 0
	best, worst := 0, 0
	for i, c := range ordered {
		sumCondition += c.SkinCondition
		sumStress += c.StressLevel
		if i == 0 || c.SkinCondition > best {
			best = c.SkinCondition
		}
		if i == 0 || c.SkinCondition < worst {
			worst = c.SkinCondition
		}
	}

	trend := "stable"
	if n >= 2 && ordered[n-1].SkinCondition > ordered[0].SkinCondition {
		trend = "amélioration"
	}

	return CheckInStats{
		TotalCheckIns:    n,
		TotalPhotos:      photoCount,
		AvgSkinCondition: round1(float64(sumCondition) / float64(n)),
		AvgStressLevel:   round1(float64(sumStress) / float64(n)),
		SkinTrend:        trend,
		BestSkinDay:      best,
		WorstSkinDay:     worst,
		ConsistencyScore: round1(float64(n) / 30 * 100),
	}
}
