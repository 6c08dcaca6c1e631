package api

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/GeyBee/skincare-saas/internal/service"
	"github.com/GeyBee/skincare-saas/internal/storage"
	"github.com/gin-gonic/gin"
)

func UploadPhoto(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		file, err := c.FormFile("file")
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Missing file upload")
			return
		}
		photoType := c.DefaultPostForm("photo_type", "progress")
		contentType := file.Header.Get("Content-Type")

		photo, err := service.StorePhoto(c.Request.Context(), app.Photos(), user,
			filepath.Base(file.Filename), contentType, photoType, file.Size)
		if err != nil {
			if errors.Is(err, service.ErrNotAnImage) {
				HandleError(c, app.Logger(), err, 400, "Le fichier doit être une image")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to save photo")
			return
		}

		if err := c.SaveUploadedFile(file, filepath.Join(app.UploadDir(), photo.Filename)); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to store photo file")
			return
		}

		HandleCreated(c, app.Logger(), photo,
			map[string]any{"message": "Photo uploadée avec succès !", "photo_id": photo.ID})
	}
}

func GetPhotoGallery(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		photos, err := app.Photos().ListPhotos(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch photos")
			return
		}

		HandleSuccess(c, app.Logger(), photos, map[string]any{"count": len(photos)})
	}
}

func DeletePhoto(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		photoID := c.Param("id")

		photo, err := app.Photos().DeletePhoto(c.Request.Context(), user.ID, photoID)
		if err != nil {
			if errors.Is(err, storage.ErrPhotoNotFound) {
				HandleError(c, app.Logger(), err, 404, "Photo non trouvée")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to delete photo")
			return
		}

		// Best effort; metadata removal is what matters.
		_ = os.Remove(filepath.Join(app.UploadDir(), photo.Filename))

		HandleSuccess(c, app.Logger(), photo, map[string]any{"message": "Photo supprimée"})
	}
}
