package service

import (
	"testing"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oilySkinProfile(stress int) *internal.SkinProfile {
	return &internal.SkinProfile{
		UserID:       "u1",
		SkinType:     "grasse",
		MainConcerns: []string{"acné"},
		StressLevel:  stress,
	}
}

func TestGenerateRecommendationsHighStress(t *testing.T) {
	recs := GenerateRecommendations(oilySkinProfile(9), nil, nil)
	require.Len(t, recs, 4)

	// Sorted by match score descending; the wellness extra (85) leads.
	assert.Equal(t, "Bien-être", recs[0].Category)
	assert.Equal(t, 85, recs[0].MatchScore)
	assert.Equal(t, "medium", recs[0].Urgency)
	assert.Equal(t, []string{"Niveau de stress élevé détecté"}, recs[0].Reasons)

	// CeraVe: 40 (grasse) + 23 (rating) + 10 (price) = 73
	assert.Equal(t, "Nettoyants", recs[1].Category)
	assert.Equal(t, "CeraVe Gel Moussant", recs[1].Product.Name)
	assert.Equal(t, 73, recs[1].MatchScore)
	assert.Equal(t, []string{"Adapté aux peaux grasses"}, recs[1].Reasons)

	// Effaclar: 40 + 21.5 + 5 = 66.5 → 66
	assert.Equal(t, "Hydratants", recs[2].Category)
	assert.Equal(t, "Effaclar Mat La Roche-Posay", recs[2].Product.Name)
	assert.Equal(t, 66, recs[2].MatchScore)

	// Niacinamide: 30 (acné) + 22 + 10 = 62
	assert.Equal(t, "Serums", recs[3].Category)
	assert.Equal(t, "The Ordinary Niacinamide 10%", recs[3].Product.Name)
	assert.Equal(t, 62, recs[3].MatchScore)
	assert.Equal(t, []string{"Traite: acné"}, recs[3].Reasons)

	for _, r := range recs[1:] {
		assert.Equal(t, "medium", r.Urgency)
	}
}

func TestGenerateRecommendationsNoWellnessAtThreshold(t *testing.T) {
	// Bonus requires stress strictly above 7.
	recs := GenerateRecommendations(oilySkinProfile(7), nil, nil)
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.NotEqual(t, "Bien-être", r.Category)
	}
}

func TestGenerateRecommendationsDeterministic(t *testing.T) {
	profile := &internal.SkinProfile{
		UserID:       "u1",
		SkinType:     "sensible",
		MainConcerns: []string{"sensibilité", "sécheresse"},
		StressLevel:  8,
	}
	first := GenerateRecommendations(profile, nil, nil)
	second := GenerateRecommendations(profile, nil, nil)
	assert.Equal(t, first, second)
}

func TestGenerateRecommendationsSortedDescending(t *testing.T) {
	recs := GenerateRecommendations(oilySkinProfile(9), nil, nil)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
}

func TestMatchedConcernsKeepProfileOrder(t *testing.T) {
	profile := &internal.SkinProfile{
		SkinType:     "normale",
		MainConcerns: []string{"pores dilatés", "acné"},
	}
	product := &CatalogProduct{Concerns: []string{"acné", "pores dilatés"}}
	assert.Equal(t, []string{"pores dilatés", "acné"}, matchedConcerns(product, profile))
}

func TestScoreProduct(t *testing.T) {
	profile := oilySkinProfile(5)
	product := &CatalogProduct{
		Name:      "Test",
		Price:     14.00,
		Rating:    4.0,
		SkinTypes: []string{"grasse"},
		Concerns:  []string{"acné"},
	}
	// 40 + 30 + 20 + 10
	assert.Equal(t, 100.0, scoreProduct(product, profile))
}

func TestBestInCategoryTieKeepsFirst(t *testing.T) {
	profile := &internal.SkinProfile{SkinType: "normale"}
	products := []CatalogProduct{
		{Name: "first", Price: 20, Rating: 4.0},  // 20 + 5 = 25
		{Name: "second", Price: 20, Rating: 4.0}, // identical score
	}
	best, score := bestInCategory(products, profile)
	require.NotNil(t, best)
	assert.Equal(t, "first", best.Name)
	assert.Equal(t, 25.0, score)
}

func TestMatchScoreCap(t *testing.T) {
	assert.Equal(t, 100, matchScore(103.2))
	assert.Equal(t, 72, matchScore(72.9))
	assert.Equal(t, 0, matchScore(0))
}

func TestUrgencyBuckets(t *testing.T) {
	assert.Equal(t, "high", urgency(80.5))
	assert.Equal(t, "medium", urgency(80))
	assert.Equal(t, "medium", urgency(60.5))
	assert.Equal(t, "low", urgency(60))
}
