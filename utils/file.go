package utils

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces an uploaded filename to a safe basename. Images
// are stored under this name, so re-uploading the same filename overwrites
// the previous file.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// SaveImage validates and stores an uploaded product image, returning the
// filename to record on the product.
func SaveImage(c *gin.Context, fileHeader *multipart.FileHeader, uploadDir string, maxSize int64) (string, error) {
	if fileHeader.Size > maxSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type, only images are allowed")
	}

	filename := SanitizeFilename(fileHeader.Filename)
	if filename == "" {
		return "", errors.New("invalid filename")
	}

	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// DeleteImage removes a stored image if it exists.
func DeleteImage(uploadDir, filename string) error {
	if filename == "" {
		return nil
	}
	fullPath := filepath.Join(uploadDir, filename)
	if _, err := os.Stat(fullPath); err == nil {
		return os.Remove(fullPath)
	}
	return nil
}
