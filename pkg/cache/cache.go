// Package cache provides a small artifact cache for rendered outputs.
//
// The preview server uses it to avoid re-rendering SVG artifacts for a board
// document and parameter set that have not changed. Keys are derived from
// content hashes, so a stale entry can only mean a hash collision, not a
// stale render.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Artifact keys are
// content-addressed, so the TTL only bounds disk usage.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores opaque byte blobs under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds a content-addressed cache key for a rendered artifact.
// kind names the artifact type (e.g. "boardsvg"); parts are hashed together.
func ArtifactKey(kind string, parts ...any) string {
	return hashKey("artifact:"+kind, parts...)
}
