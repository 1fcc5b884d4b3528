package storage

import (
	"context"
	"strings"
	"time"
)

// Default expiry duration for presigned URLs.
const DefaultPresignedURLExpiry = 15 * time.Minute

// MediaStorage is object storage for exercise demonstration videos. Clients
// upload and download directly against presigned URLs; the server never
// proxies video bytes.
type MediaStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL allowing a PUT of
	// the object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL allowing a GET
	// of the object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// VideoObjectKey maps a cataloged exercise name to its object key. Names
// contain spaces and accents; they are kept as-is (S3 keys allow them) under
// a fixed prefix, with path separators stripped.
func VideoObjectKey(exerciseName string) string {
	safe := strings.ReplaceAll(exerciseName, "/", "-")
	return "exercise-videos/" + safe + ".mp4"
}
