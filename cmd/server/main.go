package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"social_backend/internal/app/di"
	"social_backend/internal/app/router"
	authhandler "social_backend/internal/feature/auth/transport/handler"
	authusecase "social_backend/internal/feature/auth/usecase"
	postadapters "social_backend/internal/feature/posts/adapters"
	posthandler "social_backend/internal/feature/posts/transport/handler"
	postusecase "social_backend/internal/feature/posts/usecase"
	recipeadapters "social_backend/internal/feature/recipes/adapters"
	recipehandler "social_backend/internal/feature/recipes/transport/handler"
	recipemw "social_backend/internal/feature/recipes/transport/middleware"
	recipeusecase "social_backend/internal/feature/recipes/usecase"
	platformdb "social_backend/internal/platform/db"
	jwtmw "social_backend/internal/platform/jwt"
	platformredis "social_backend/internal/platform/redis"
)

const defaultCacheTTL = 5 * time.Minute

func cacheTTL() time.Duration {
	raw := os.Getenv("CACHE_TTL")
	if raw == "" {
		return defaultCacheTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("[WARN] Invalid CACHE_TTL %q. Using %s.", raw, defaultCacheTTL)
		return defaultCacheTTL
	}
	return ttl
}

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	ttl := cacheTTL()

	// Repository
	userRepo := di.NewUserRepository(db, rdb, ttl)
	recipeRepo := recipeadapters.NewRecipeGorm(db)
	postRepo := postadapters.NewPostRepository(db)

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, 24*time.Hour)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	recipesUC := recipeusecase.NewRecipesUsecase(recipeRepo, di.NewRecipeCache(rdb, ttl))
	postsUC := postusecase.NewPostsUsecase(postRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recipesH := recipehandler.NewRecipeHandler(recipesUC)
	postsH := posthandler.NewPostHandler(postsUC)

	router := router.NewRouter(authH, recipesH, postsH, recipemw.OwnerRequired(recipeRepo))

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
