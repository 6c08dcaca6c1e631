package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/GeyBee/skincare-saas/internal"
)

// Additive scoring weights. Hand-tuned values carried over unchanged from
// the original product-matching heuristic.
const (
	skinTypeBonus      = 40
	concernBonus       = 30
	ratingWeight       = 5
	cheapPriceBonus    = 10 // price < 15
	midPriceBonus      = 5  // price < 25
	highUrgencyScore   = 80
	mediumUrgencyScore = 60
	highStressLevel    = 7
	wellnessScore      = 85
	maxMatchScore      = 100
)

type Recommendation struct {
	Category   string         `json:"category"`
	Product    CatalogProduct `json:"product"`
	MatchScore int            `json:"match_score"`
	Reasons    []string       `json:"reasons"`
	Urgency    string         `json:"urgency"`
}

// GenerateRecommendations scores the fixed catalog against the user's
// profile and returns one entry per category plus, under high stress, a
// wellness extra. The result is sorted by match score descending; ties keep
// encounter order. Deterministic for identical inputs.
//
// Check-ins and photos are accepted for interface symmetry with the other
// engine functions; the catalog heuristic only reads the profile.
func GenerateRecommendations(profile *internal.SkinProfile, checkins []internal.CheckIn, photos []internal.Photo) []Recommendation {
	recommendations := []Recommendation{}

	for _, category := range productCatalog {
		best, bestScore := bestInCategory(category.Products, profile)
		if best != nil {
			recommendations = append(recommendations, Recommendation{
				Category:   category.Label,
				Product:    *best,
				MatchScore: matchScore(bestScore),
				Reasons:    matchReasons(best, profile),
				Urgency:    urgency(bestScore),
			})
		}
	}

	if profile.StressLevel > highStressLevel {
		recommendations = append(recommendations, Recommendation{
			Category:   "Bien-être",
			Product:    wellnessProduct,
			MatchScore: wellnessScore,
			Reasons:    []string{"Niveau de stress élevé détecté"},
			Urgency:    "medium",
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	return recommendations
}

// bestInCategory picks the highest-scoring product. Strict > keeps the
// first product encountered on ties; a zero score selects nothing.
func bestInCategory(products []CatalogProduct, profile *internal.SkinProfile) (*CatalogProduct, float64) {
	var best *CatalogProduct
	bestScore := 0.0
	for i := range products {
		score := scoreProduct(&products[i], profile)
		if score > bestScore {
			bestScore = score
			best = &products[i]
		}
	}
	return best, bestScore
}

func scoreProduct(product *CatalogProduct, profile *internal.SkinProfile) float64 {
	score := 0.0

	if containsString(product.SkinTypes, profile.SkinType) {
		score += skinTypeBonus
	}
	score += float64(len(matchedConcerns(product, profile))) * concernBonus
	score += product.Rating * ratingWeight

	if product.Price < 15 {
		score += cheapPriceBonus
	} else if product.Price < 25 {
		score += midPriceBonus
	}
	return score
}

// matchedConcerns returns the intersection of the profile's concerns and
// the product's addressed concerns, in profile order.
func matchedConcerns(product *CatalogProduct, profile *internal.SkinProfile) []string {
	var matched []string
	for _, concern := range profile.MainConcerns {
		if containsString(product.Concerns, concern) {
			matched = append(matched, concern)
		}
	}
	return matched
}

func matchReasons(product *CatalogProduct, profile *internal.SkinProfile) []string {
	reasons := []string{}
	if containsString(product.SkinTypes, profile.SkinType) {
		reasons = append(reasons, fmt.Sprintf("Adapté aux peaux %ss", profile.SkinType))
	}
	if matched := matchedConcerns(product, profile); len(matched) > 0 {
		reasons = append(reasons, "Traite: "+strings.Join(matched, ", "))
	}
	return reasons
}

// matchScore truncates the raw score and caps it at maxMatchScore.
func matchScore(score float64) int {
	if score > maxMatchScore {
		return maxMatchScore
	}
	return int(score)
}

func urgency(score float64) string {
	switch {
	case score > highUrgencyScore:
		return "high"
	case score > mediumUrgencyScore:
		return "medium"
	default:
		return "low"
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
