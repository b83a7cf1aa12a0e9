package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/internal/domain/service"
	"bazaartrack/internal/infrastructure/storage"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/logger"
	"bazaartrack/pkg/response"
)

const maxUploadSize = 5 * 1024 * 1024

type FileHandler struct {
	fileService service.FileUploadService
	maxFileSize int64
}

// NewFileHandler accepts a nil service; uploads then report the storage as unavailable.
func NewFileHandler(fileService service.FileUploadService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxFileSize: maxUploadSize,
	}
}

func (h *FileHandler) UploadImage(c echo.Context) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return response.Error(c, err)
	}

	if h.fileService == nil {
		return response.Error(c, errors.Upstream("Image storage is not configured", nil))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read image", err))
	}
	defer src.Close()

	// Trust the bytes, not the declared Content-Type.
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return response.Error(c, errors.BadRequest("Failed to read image", err))
	}
	contentType := http.DetectContentType(head[:n])
	if !storage.IsSupportedImage(contentType) {
		logger.Warn("Rejected upload of type %s from %s", contentType, principal.Email)
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return response.Error(c, errors.BadRequest("Failed to read image", err))
	}

	folder := sanitizeFolderName(c.FormValue("folder"))

	url, err := h.fileService.UploadFile(c.Request().Context(), src, file.Size, contentType, folder)
	if err != nil {
		return response.Error(c, errors.Upstream("Failed to store image", err))
	}

	logger.Debug("Stored image %s for %s", url, principal.Email)
	return response.Created(c, map[string]string{"url": url})
}

func sanitizeFolderName(folder string) string {
	folder = filepath.Base(folder)

	validChars := []rune{}
	for _, char := range folder {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			validChars = append(validChars, char)
		}
	}

	sanitized := string(validChars)
	if sanitized == "" {
		return "uploads"
	}
	return sanitized
}
