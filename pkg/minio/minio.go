package minio

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket creates the configured bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		return handleMinIOError(err, "check_bucket_exists")
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.config.Bucket, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

// Upload stores an object under key and returns its metadata.
func (m *implMinIO) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error) {
	if key == "" {
		return nil, NewInvalidInputError("object key is required")
	}

	info, err := m.client.PutObject(ctx, m.config.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, handleMinIOError(err, "upload")
	}

	return &ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  contentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// PresignedGetURL returns a time-limited download URL for key.
func (m *implMinIO) PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if key == "" {
		return "", NewInvalidInputError("object key is required")
	}

	u, err := m.client.PresignedGetObject(ctx, m.config.Bucket, key, expiry, url.Values{})
	if err != nil {
		return "", handleMinIOError(err, "presigned_get")
	}
	return u.String(), nil
}

// Remove deletes an object. Removing a missing object is not an error.
func (m *implMinIO) Remove(ctx context.Context, key string) error {
	if key == "" {
		return NewInvalidInputError("object key is required")
	}
	if err := m.client.RemoveObject(ctx, m.config.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "remove")
	}
	return nil
}

// HealthCheck verifies the connection by checking the bucket.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

// handleMinIOError maps minio-go errors into StorageError values.
func handleMinIOError(err error, operation string) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		e := NewObjectNotFoundError(resp.Key)
		e.Operation = operation
		return e
	case "NoSuchBucket":
		e := NewInvalidInputError("bucket not found: " + resp.BucketName)
		e.Operation = operation
		return e
	default:
		e := NewConnectionError(err)
		e.Operation = operation
		return e
	}
}
