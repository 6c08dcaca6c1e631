package api

import (
	"errors"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/service"
	"github.com/GeyBee/skincare-saas/internal/storage"
	"github.com/gin-gonic/gin"
)

func GetProgressAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		checkins, photos, err := loadHistory(c, app, user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch history")
			return
		}

		if len(checkins) == 0 {
			HandleSuccess(c, app.Logger(), nil,
				map[string]any{"message": "Pas assez de données pour l'analyse"})
			return
		}

		stats := service.CalculateCheckInStats(checkins, len(photos))
		HandleSuccess(c, app.Logger(), stats, nil)
	}
}

func GetRecommendations(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		profile, err := app.Profiles().GetProfile(c.Request.Context(), user.ID)
		if err != nil {
			if errors.Is(err, storage.ErrProfileNotFound) {
				// The engine assumes a profile; short-circuit with an empty list.
				HandleSuccess(c, app.Logger(), gin.H{"recommendations": []service.Recommendation{}},
					map[string]any{"message": "Créez d'abord votre profil de peau"})
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to fetch profile")
			return
		}

		checkins, photos, err := loadHistory(c, app, user)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch history")
			return
		}

		recommendations := service.GenerateRecommendations(profile, checkins, photos)
		analysis := service.AnalyzeProgress(checkins, len(photos))

		HandleSuccess(c, app.Logger(), gin.H{
			"recommendations": recommendations,
			"skin_analysis":   analysis,
		}, map[string]any{
			"total_recommendations": len(recommendations),
			"generated_at":          time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func GetPrediction(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		profile, err := app.Profiles().GetProfile(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Créez d'abord votre profil de peau")
			return
		}

		checkins, err := app.CheckIns().ListCheckIns(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch check-ins")
			return
		}

		prediction := service.PredictFuture(profile, checkins)
		HandleSuccess(c, app.Logger(), prediction, nil)
	}
}

func loadHistory(c *gin.Context, app App, user *internal.User) ([]internal.CheckIn, []internal.Photo, error) {
	checkins, err := app.CheckIns().ListCheckIns(c.Request.Context(), user.ID)
	if err != nil {
		return nil, nil, err
	}
	photos, err := app.Photos().ListPhotos(c.Request.Context(), user.ID)
	if err != nil {
		return nil, nil, err
	}
	return checkins, photos, nil
}
