package api

import (
	"github.com/GeyBee/skincare-saas/internal/service"
	"github.com/gin-gonic/gin"
)

func PostCheckIn(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.CheckInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateCheckInRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		checkin, err := service.RecordCheckIn(c.Request.Context(), app.CheckIns(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save check-in")
			return
		}

		HandleCreated(c, app.Logger(), checkin,
			map[string]any{"message": "Check-in enregistré !"})
	}
}

func GetCheckInHistory(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		checkins, err := app.CheckIns().ListCheckIns(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch check-ins")
			return
		}

		HandleSuccess(c, app.Logger(), checkins, map[string]any{"count": len(checkins)})
	}
}
