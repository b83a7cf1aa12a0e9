package service

import (
	"context"
	"io"
)

// FileUploadService stores uploaded images and returns a URL clients can load them from.
type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, size int64, contentType, folder string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
	Close() error
}
