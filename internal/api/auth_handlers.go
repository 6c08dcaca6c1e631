package api

import (
	"errors"

	"github.com/GeyBee/skincare-saas/internal/service"
	"github.com/gin-gonic/gin"
)

func Register(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateRegisterRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		user, err := service.RegisterUser(c.Request.Context(), app.Users(), &req)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				HandleError(c, app.Logger(), err, 409, "Email déjà utilisé")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to register user")
			return
		}

		token, err := app.Auth().IssueToken(user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to issue token")
			return
		}

		HandleCreated(c, app.Logger(), gin.H{"token": token, "user": user},
			map[string]any{"message": "Compte créé avec succès !"})
	}
}

func Login(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateLoginRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		user, err := service.AuthenticateUser(c.Request.Context(), app.Users(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 401, "Email ou mot de passe incorrect")
			return
		}

		token, err := app.Auth().IssueToken(user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to issue token")
			return
		}

		HandleSuccess(c, app.Logger(), gin.H{"token": token, "user": user},
			map[string]any{"message": "Connexion réussie !"})
	}
}
