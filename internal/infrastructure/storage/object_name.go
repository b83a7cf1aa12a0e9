package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IsSupportedImage reports whether uploads of contentType are accepted.
func IsSupportedImage(contentType string) bool {
	_, ok := imageExtensions[strings.ToLower(contentType)]
	return ok
}

func objectName(folder, contentType string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		ext = ".bin"
	}
	return fmt.Sprintf("public/%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), ext)
}
