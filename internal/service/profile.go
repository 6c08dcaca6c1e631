package service

import (
	"context"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/storage"
)

type ProfileRequest struct {
	SkinType     string   `json:"skin_type" validate:"required"`
	MainConcerns []string `json:"main_concerns" validate:"dive,required"`
	StressLevel  int      `json:"stress_level" validate:"required,gte=1,lte=10"`
}

func ValidateProfileRequest(req *ProfileRequest) error {
	return validate.Struct(req)
}

// UpsertProfile replaces any existing profile for the user.
func UpsertProfile(ctx context.Context, profiles storage.ProfileRepository, user *internal.User, req *ProfileRequest) (*internal.SkinProfile, error) {
	profile := &internal.SkinProfile{
		UserID:       user.ID,
		SkinType:     req.SkinType,
		MainConcerns: req.MainConcerns,
		StressLevel:  req.StressLevel,
		CreatedAt:    time.Now().UTC(),
	}
	if err := profiles.SetProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
