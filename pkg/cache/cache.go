// Package cache stores generated tick data keyed by a content hash of the
// scale definition and generation options, so repeated renders of the same
// scale skip regeneration.
//
// Three backends are provided: a file cache for CLI usage, a Redis cache
// for the server, and a null cache that disables caching entirely. All
// backends store opaque bytes; callers serialize with pkg/export.
package cache

import (
	"context"
	"time"
)

// Cache is the storage contract shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss; misses
	// are not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes one key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry this cache owns.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
