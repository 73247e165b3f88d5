package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/observability"
)

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string
	// Password is optional.
	Password string
	// DB selects the logical database number.
	DB int
	// Namespace prefixes every key this cache writes, so Clear only
	// touches its own entries on a shared server. Defaults to
	// "electricslide".
	Namespace string
}

// RedisCache is the server-side backend, sharing cached generations across
// instances.
type RedisCache struct {
	client    *redis.Client
	namespace string
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeCache, err, "connect to redis at %s", cfg.Addr)
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = "electricslide"
	}
	return &RedisCache{client: client, namespace: ns}, nil
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.namespaced(key)).Bytes()
	if err == redis.Nil {
		observability.Cache().OnCacheMiss(ctx, "redis")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeCache, err, "redis get")
	}
	observability.Cache().OnCacheHit(ctx, "redis")
	return data, true, nil
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.namespaced(key), data, ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCache, err, "redis set")
	}
	observability.Cache().OnCacheSet(ctx, "redis", len(data))
	return nil
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.namespaced(key)).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCache, err, "redis delete")
	}
	return nil
}

// Clear implements Cache by scanning and deleting only this cache's
// namespace, never the whole database.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.namespace+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrap(errors.ErrCodeCache, err, "redis clear")
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCache, err, "redis scan")
	}
	return nil
}

// Close implements Cache.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) namespaced(key string) string {
	return c.namespace + ":" + key
}

var _ Cache = (*RedisCache)(nil)
