package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// IMinIO is the object storage interface used for thumbnail files.
type IMinIO interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error)
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
	HealthCheck(ctx context.Context) error
}

// New creates a MinIO storage client from the given config.
func New(cfg Config) (IMinIO, error) {
	if cfg.Endpoint == "" {
		return nil, NewInvalidInputError("endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, NewInvalidInputError("bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{client: client, config: cfg}, nil
}
