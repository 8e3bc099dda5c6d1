package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxImageSize is the upload ceiling for a single image.
const MaxImageSize = 5 * 1024 * 1024

// ImageStore uploads image files and returns their public URLs. The image
// host is an opaque collaborator behind this interface.
type ImageStore interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImage checks content type and size before any upload happens.
func ValidateImage(file *multipart.FileHeader) error {
	if file.Size > MaxImageSize {
		return fmt.Errorf("file %s exceeds the 5MB limit", file.Filename)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := strings.ToLower(file.Header.Get("Content-Type"))

	if !allowedImageExts[ext] || !allowedImageTypes[contentType] {
		return fmt.Errorf("only image files are allowed (jpeg, jpg, png, gif, webp)")
	}
	return nil
}

// DisabledStore rejects all uploads. Used when no bucket is configured.
type DisabledStore struct{}

func (DisabledStore) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	return "", fmt.Errorf("image uploads are not configured")
}
