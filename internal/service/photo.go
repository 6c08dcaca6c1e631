package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/storage"
	"github.com/google/uuid"
)

var ErrNotAnImage = errors.New("service: uploaded file must be an image")

// StorePhoto records metadata for an uploaded photo. Content stays opaque;
// only the count and ordering matter downstream.
func StorePhoto(ctx context.Context, photos storage.PhotoRepository, user *internal.User, filename, contentType, photoType string, size int64) (*internal.Photo, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}
	if photoType == "" {
		photoType = "progress"
	}
	id := uuid.NewString()
	photo := &internal.Photo{
		ID:         id,
		UserID:     user.ID,
		Filename:   id + "_" + filename,
		Type:       photoType,
		Size:       size,
		UploadedAt: time.Now().UTC(),
	}
	if err := photos.SavePhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}
