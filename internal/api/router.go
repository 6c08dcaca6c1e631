package api

import (
	"github.com/GeyBee/skincare-saas/internal/auth"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and the full route table.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(CORSMiddleware())

	r.GET("/", Home())
	r.GET("/health", Health())
	r.POST("/auth/register", Register(app))
	r.POST("/auth/login", Login(app))

	protected := r.Group("/")
	protected.Use(auth.Middleware(app.Auth(), app.Users()))
	{
		protected.POST("/profile/skin", PostProfile(app))
		protected.GET("/profile/skin", GetProfile(app))
		protected.POST("/checkin", PostCheckIn(app))
		protected.GET("/checkin/history", GetCheckInHistory(app))
		protected.POST("/photos/upload", UploadPhoto(app))
		protected.GET("/photos/gallery", GetPhotoGallery(app))
		protected.DELETE("/photos/:id", DeletePhoto(app))
		protected.GET("/analytics/progress", GetProgressAnalytics(app))
		protected.GET("/ai/recommendations", GetRecommendations(app))
		protected.GET("/ai/prediction", GetPrediction(app))
	}

	return r
}
