package minio

import (
	"context"
	"fmt"

	"tubeline-api/config"
	miniopkg "tubeline-api/pkg/minio"
)

var client miniopkg.IMinIO

// Connect initializes a MinIO storage client and ensures the bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (miniopkg.IMinIO, error) {
	impl, err := miniopkg.New(miniopkg.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if err := impl.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure MinIO bucket: %w", err)
	}

	client = impl
	return client, nil
}

// HealthCheck verifies the MinIO connection.
func HealthCheck(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("MinIO client not initialized")
	}
	return client.HealthCheck(ctx)
}
