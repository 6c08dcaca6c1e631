package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictFutureInsufficientData(t *testing.T) {
	profile := oilySkinProfile(5)

	for _, n := range []int{0, 1, 2} {
		conditions := make([]int, n)
		for i := range conditions {
			conditions[i] = 5
		}
		result := PredictFuture(profile, makeHistory(conditions...))
		assert.Equal(t, "insufficient_data", result.Status, "n=%d", n)
		assert.Nil(t, result.Predictions, "n=%d", n)

		// The serialized shape must not carry a predictions key.
		raw, err := json.Marshal(result)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "predictions")
	}
}

func TestPredictFutureShortHistoryIsFlat(t *testing.T) {
	// 3 check-ins: the analyzer has no prior window, so the projection is
	// the recent mean at floor confidence.
	result := PredictFuture(oilySkinProfile(5), makeHistory(6, 6, 6))
	require.Len(t, result.Predictions, 4)

	for i, weeks := range []int{2, 4, 8, 12} {
		p := result.Predictions[i]
		assert.Equal(t, weeks, p.WeeksAhead)
		assert.Equal(t, 6.0, p.PredictedScore)
		assert.Equal(t, 30, p.Confidence)
		assert.Equal(t, "fair", p.Outlook)
	}
	assert.Equal(t, "stable", result.TrendDirection)
	assert.Equal(t, "low", result.Reliability)
}

func TestPredictFutureImproving(t *testing.T) {
	// prior [4×5] avg 4.0, recent [6×7] avg 6.0 → rate 2.0, confidence 90
	history := makeHistory(4, 4, 4, 4, 4, 6, 6, 6, 6, 6, 6, 6)
	result := PredictFuture(oilySkinProfile(5), history)
	require.Len(t, result.Predictions, 4)

	expected := []Prediction{
		{WeeksAhead: 2, PredictedScore: 7.2, Confidence: 80, Outlook: "good"},
		{WeeksAhead: 4, PredictedScore: 8.4, Confidence: 70, Outlook: "excellent"},
		{WeeksAhead: 8, PredictedScore: 10.0, Confidence: 50, Outlook: "excellent"},
		{WeeksAhead: 12, PredictedScore: 10.0, Confidence: 30, Outlook: "excellent"},
	}
	assert.Equal(t, expected, result.Predictions)
	assert.Equal(t, "improvement", result.TrendDirection)
	assert.Equal(t, "high", result.Reliability) // 12 > 10 check-ins
	assert.Empty(t, result.Status)
}

func TestPredictFutureDecliningClampsAtFloor(t *testing.T) {
	// prior [9] avg 9.0, recent [5×7] avg 5.0 → rate -4.0
	history := makeHistory(9, 5, 5, 5, 5, 5, 5, 5)
	result := PredictFuture(oilySkinProfile(5), history)
	require.Len(t, result.Predictions, 4)

	// analyzer confidence: min(85, 65+2*8) = 81
	assert.Equal(t, 2.6, result.Predictions[0].PredictedScore)
	assert.Equal(t, 71, result.Predictions[0].Confidence)
	assert.Equal(t, "needs_intensive_care", result.Predictions[0].Outlook)

	assert.Equal(t, 1.0, result.Predictions[1].PredictedScore) // clamped
	assert.Equal(t, 1.0, result.Predictions[2].PredictedScore)
	assert.Equal(t, 1.0, result.Predictions[3].PredictedScore)

	assert.Equal(t, "decline", result.TrendDirection)
	assert.Equal(t, "medium", result.Reliability) // 8 > 5 check-ins
}
