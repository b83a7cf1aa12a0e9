package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bazaartrack/pkg/logger"
)

type MinioStorageClient struct {
	client     *minio.Client
	bucketName string
	baseURL    string
}

func NewMinioStorageClient(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinioStorageClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %v", bucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %v", bucketName, err)
		}
		logger.Info("Created bucket: %s", bucketName)
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &MinioStorageClient{
		client:     client,
		bucketName: bucketName,
		baseURL:    fmt.Sprintf("%s://%s/%s/", scheme, endpoint, bucketName),
	}, nil
}

func (c *MinioStorageClient) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, folder string) (string, error) {
	name := objectName(folder, contentType)

	_, err := c.client.PutObject(ctx, c.bucketName, name, file, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %v", err)
	}

	return c.baseURL + name, nil
}

func (c *MinioStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	if !strings.HasPrefix(fileURL, c.baseURL) {
		return fmt.Errorf("invalid object URL or bucket mismatch")
	}

	name := strings.TrimPrefix(fileURL, c.baseURL)
	if err := c.client.RemoveObject(ctx, c.bucketName, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

// Close is a no-op; the minio client holds no long-lived connections of its own.
func (c *MinioStorageClient) Close() error {
	return nil
}
