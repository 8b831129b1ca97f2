package storage

import (
	"context"
	"time"
)

// BlobStore persists request artifacts (uploaded images, final results).
// Persistence is best-effort from the pipeline's point of view; a failed
// Put never changes an already-computed response.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	SignedURL(key string, ttl time.Duration) (string, error)
}
