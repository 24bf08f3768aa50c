package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/internal/storage"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
)

const maxImageSize = 5 * 1024 * 1024

// ImageStore is the object storage used for workout and event images.
type ImageStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, objectName string) error
	ObjectURL(objectName string) string
}

func storageUnavailable(c *fiber.Ctx) error {
	return utils.Error(c, fiber.StatusServiceUnavailable, "image storage is not configured")
}

// receiveImage stores the multipart "image" field under prefix/ownerID and
// returns the public URL and object key.
func receiveImage(c *fiber.Ctx, store ImageStore, prefix string, ownerID uuid.UUID) (string, string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", "", services.Validation("image file is required")
	}
	if file.Size <= 0 || file.Size > maxImageSize {
		return "", "", services.Validation("image must be between 1 byte and 5 MB")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", services.Validation("image must have an image/* content type")
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	key := storage.ImageKey(prefix, ownerID, file.Filename)
	if err := store.Upload(c.UserContext(), key, src, file.Size, contentType); err != nil {
		return "", "", err
	}
	return store.ObjectURL(key), key, nil
}

// releaseImage removes a replaced or orphaned object. Failures are only logged.
func releaseImage(ctx context.Context, store ImageStore, key *string) {
	if store == nil || key == nil || *key == "" {
		return
	}
	if err := store.Delete(ctx, *key); err != nil {
		logger.Warn("image_cleanup_failed", map[string]interface{}{
			"object_name": *key,
			"error":       err.Error(),
		})
	}
}
