package service

import (
	"context"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/storage"
)

type CheckInRequest struct {
	SkinCondition int `json:"skin_condition" validate:"required,gte=1,lte=10"`
	StressLevel   int `json:"stress_level" validate:"required,gte=1,lte=10"`
	SleepHours    int `json:"sleep_hours" validate:"gte=0,lte=24"`
}

func ValidateCheckInRequest(req *CheckInRequest) error {
	return validate.Struct(req)
}

// RecordCheckIn stores today's check-in. The ID is user+date, so a second
// submit on the same day overwrites the first.
func RecordCheckIn(ctx context.Context, checkins storage.CheckInRepository, user *internal.User, req *CheckInRequest) (*internal.CheckIn, error) {
	now := time.Now().UTC()
	date := now.Format("2006-01-02")
	checkin := &internal.CheckIn{
		ID:            user.ID + "_" + date,
		UserID:        user.ID,
		Date:          date,
		SkinCondition: req.SkinCondition,
		StressLevel:   req.StressLevel,
		SleepHours:    req.SleepHours,
		CreatedAt:     now,
	}
	if err := checkins.SaveCheckIn(ctx, checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}
