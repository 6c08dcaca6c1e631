package api

import (
	"github.com/GeyBee/skincare-saas/internal/service"
	"github.com/gin-gonic/gin"
)

func PostProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateProfileRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		profile, err := service.UpsertProfile(c.Request.Context(), app.Profiles(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save profile")
			return
		}

		HandleCreated(c, app.Logger(), profile,
			map[string]any{"message": "Profil de peau créé avec succès !"})
	}
}

func GetProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		profile, err := app.Profiles().GetProfile(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Profil non trouvé")
			return
		}

		HandleSuccess(c, app.Logger(), profile, nil)
	}
}
