package service

import "github.com/GeyBee/skincare-saas/internal"

// Prediction horizons in weeks.
var predictionHorizons = []int{2, 4, 8, 12}

// horizonDamping scales the per-period trend rate before projecting it over
// a horizon, so long-range projections stay conservative.
const horizonDamping = 0.3

const minPredictionCheckIns = 3

type Prediction struct {
	WeeksAhead     int     `json:"weeks_ahead"`
	PredictedScore float64 `json:"predicted_score"`
	Confidence     int     `json:"confidence"`
	Outlook        string  `json:"outlook"`
}

type FuturePrediction struct {
	Status         string       `json:"status,omitempty"`
	Message        string       `json:"message,omitempty"`
	Predictions    []Prediction `json:"predictions,omitempty"`
	TrendDirection string       `json:"trend_direction,omitempty"`
	Reliability    string       `json:"reliability,omitempty"`
}

// PredictFuture extrapolates skin-condition scores over fixed horizons from
// the current trend. With fewer than three check-ins it returns only an
// insufficient-data status.
func PredictFuture(profile *internal.SkinProfile, checkins []internal.CheckIn) FuturePrediction {
	if len(checkins) < minPredictionCheckIns {
		return FuturePrediction{
			Status:  "insufficient_data",
			Message: "Au moins 3 check-ins sont nécessaires pour une prédiction",
		}
	}

	analysis := AnalyzeProgress(checkins, 0)
	baseline := analysis.RecentAverage
	rate := analysis.ImprovementScore
	baseConfidence := analysis.Confidence

	// With 3–7 check-ins the analyzer has no prior window and reports only
	// its sentinel: fall back to the recent-window mean with a flat rate.
	if analysis.Trend == TrendNotEnoughData {
		ordered := sortedByCreatedAt(checkins)
		split := len(ordered) - recentWindow
		if split < 0 {
			split = 0
		}
		baseline = round1(averageCondition(ordered[split:]))
		rate = 0
	}

	predictions := make([]Prediction, 0, len(predictionHorizons))
	for _, weeks := range predictionHorizons {
		predicted := clamp(baseline+rate*float64(weeks)*horizonDamping, 1, 10)
		confidence := baseConfidence - weeks*5
		if confidence < 30 {
			confidence = 30
		}
		predictions = append(predictions, Prediction{
			WeeksAhead:     weeks,
			PredictedScore: round1(predicted),
			Confidence:     confidence,
			Outlook:        outlook(predicted),
		})
	}

	return FuturePrediction{
		Predictions:    predictions,
		TrendDirection: trendDirection(rate),
		Reliability:    reliability(len(checkins)),
	}
}

func trendDirection(rate float64) string {
	switch {
	case rate > 0.3:
		return "improvement"
	case rate < -0.3:
		return "decline"
	default:
		return "stable"
	}
}

func reliability(n int) string {
	switch {
	case n > 10:
		return "high"
	case n > 5:
		return "medium"
	default:
		return "low"
	}
}

func outlook(score float64) string {
	switch {
	case score >= 8:
		return "excellent"
	case score >= 7:
		return "good"
	case score >= 6:
		return "fair"
	case score >= 5:
		return "average"
	case score >= 4:
		return "concerning"
	default:
		return "needs_intensive_care"
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
