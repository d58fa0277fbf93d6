// Package cache provides caching implementations backed by Redis, plus a
// no-op fallback so callers stay correct when Redis is unavailable.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	recipeusecase "social_backend/internal/feature/recipes/usecase"
)

// RedisStore is a namespaced key-value store on top of a Redis client.
// It satisfies the recipes usecase Cache interface.
type RedisStore struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that RedisStore implements the recipes Cache interface.
var _ recipeusecase.Cache = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. If ttl is 0, it defaults to
// 5 minutes. If namespace is empty, it uses "recipes".
func NewRedisStore(rdb *redis.Client, ttl time.Duration, namespace string) *RedisStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recipes"
	}
	return &RedisStore{rdb: rdb, ttl: ttl, namespace: namespace}
}

// Get returns the cached value for key, or (nil, nil) on a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, s.cacheKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores value under key with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, s.cacheKey(key), value, s.ttl).Err()
}

// Del removes the entry for key. Deleting an absent key is not an error.
func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.cacheKey(key)).Err()
}

func (s *RedisStore) cacheKey(key string) string {
	return s.namespace + ":" + key
}

// Noop is a Cache implementation that stores nothing. Every Get is a
// miss; Set and Del succeed without effect. It keeps cache-aside callers
// working with the cache entirely disabled.
type Noop struct{}

var _ recipeusecase.Cache = Noop{}

func (Noop) Get(ctx context.Context, key string) ([]byte, error)    { return nil, nil }
func (Noop) Set(ctx context.Context, key string, value []byte) error { return nil }
func (Noop) Del(ctx context.Context, key string) error               { return nil }
