package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"social_backend/internal/feature/auth/domain/entity"
	authusecase "social_backend/internal/feature/auth/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching of
// user lookups. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository.
type CachingUserRepository struct {
	inner     authusecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ authusecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner authusecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create passes through to the inner repository. The new user enters the
// cache on its first lookup.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	return c.inner.Create(ctx, u)
}

// FindByEmail retrieves a user by email, checking the cache first and
// populating it on a store hit.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.lookup(ctx, c.cacheKey(email), func() (*entity.User, error) {
		return c.inner.FindByEmail(ctx, email)
	})
}

// FindByEmailOrUsername retrieves a user matching either field, checking
// the cache first and populating it on a store hit.
func (c *CachingUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	return c.lookup(ctx, c.cacheKey(email+"-"+username), func() (*entity.User, error) {
		return c.inner.FindByEmailOrUsername(ctx, email, username)
	})
}

// lookup runs the read-through: cache hit wins, otherwise the loader is
// consulted and a found user is cached best effort. Misses (user not
// found) are never cached.
func (c *CachingUserRepository) lookup(ctx context.Context, key string, load func() (*entity.User, error)) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	u, err := load()
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return u, nil
}

func (c *CachingUserRepository) cacheKey(key string) string {
	return c.namespace + ":" + key
}
