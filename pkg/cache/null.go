package cache

import (
	"context"
	"time"
)

// NullCache never stores anything. It backs the --no-cache flag and keeps
// call sites free of nil checks.
type NullCache struct{}

// NewNullCache creates a cache that always misses.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get implements Cache with a permanent miss.
func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set implements Cache as a no-op.
func (*NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete implements Cache as a no-op.
func (*NullCache) Delete(ctx context.Context, key string) error { return nil }

// Clear implements Cache as a no-op.
func (*NullCache) Clear(ctx context.Context) error { return nil }

// Close implements Cache as a no-op.
func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
