// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "social_backend/internal/feature/auth/adapters"
	authusecase "social_backend/internal/feature/auth/usecase"
	recipeusecase "social_backend/internal/feature/recipes/usecase"
	"social_backend/internal/platform/cache"
)

// NewRecipeCache creates the cache used by the recipes usecase.
// Without Redis it degrades to a no-op store, so reads and writes
// always go to the database.
func NewRecipeCache(rdb *redis.Client, ttl time.Duration) recipeusecase.Cache {
	if rdb == nil {
		return cache.Noop{}
	}
	return cache.NewRedisStore(rdb, ttl, "recipes")
}

// NewUserRepository creates the user repository, wrapped in a
// read-through Redis cache when one is available.
func NewUserRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) authusecase.UserRepository {
	repo := authadapters.NewUserGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingUserRepository(rdb, ttl, repo, "users")
}
