package storage

import (
	"context"
	"errors"

	"github.com/GeyBee/skincare-saas/internal"
)

var (
	ErrUserNotFound    = errors.New("storage: user not found")
	ErrProfileNotFound = errors.New("storage: profile not found")
	ErrPhotoNotFound   = errors.New("storage: photo not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *internal.User) error
	GetUserByEmail(ctx context.Context, email string) (*internal.User, error)
	GetUserByID(ctx context.Context, id string) (*internal.User, error)
}

type ProfileRepository interface {
	SetProfile(ctx context.Context, profile *internal.SkinProfile) error
	GetProfile(ctx context.Context, userID string) (*internal.SkinProfile, error)
}

// CheckInRepository keeps at most one check-in per user per date (later
// writes for the same date replace the earlier entry) and lists history
// sorted by created_at ascending.
type CheckInRepository interface {
	SaveCheckIn(ctx context.Context, checkin *internal.CheckIn) error
	ListCheckIns(ctx context.Context, userID string) ([]internal.CheckIn, error)
}

// PhotoRepository lists photos newest first.
type PhotoRepository interface {
	SavePhoto(ctx context.Context, photo *internal.Photo) error
	ListPhotos(ctx context.Context, userID string) ([]internal.Photo, error)
	DeletePhoto(ctx context.Context, userID, photoID string) (*internal.Photo, error)
}

// Repositories bundles every repository a running server needs.
type Repositories interface {
	UserRepository
	ProfileRepository
	CheckInRepository
	PhotoRepository
	Close() error
}
