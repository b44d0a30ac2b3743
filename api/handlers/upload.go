package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inkpost/apperrors"
	"inkpost/config"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/jpg":     {},
	"image/png":     {},
	"image/svg+xml": {},
}

// saveUploadedImage stores the multipart "image" field under the configured
// upload dir with a uuid filename and returns its relative path. A missing
// file returns ("", nil) so callers decide whether the image is required.
func saveUploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return storeImage(c, file)
}

func storeImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()

	if file.Size > int64(cfg.Upload.MaxSizeMB)*1024*1024 {
		return "", apperrors.Validation("Image exceeds the maximum allowed size")
	}
	contentType := file.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", apperrors.Validation("Invalid file type. Only JPEG, PNG and SVG are allowed")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	rel := filepath.Join(cfg.Upload.Dir, name)
	dst := filepath.Join(config.GetBasePath(), rel)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", apperrors.Wrap(apperrors.KindUnknown, "Failed to store image", err)
	}
	return rel, nil
}
