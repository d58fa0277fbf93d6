package router

import (
	"github.com/gin-gonic/gin"

	authhandler "social_backend/internal/feature/auth/transport/handler"
	posthandler "social_backend/internal/feature/posts/transport/handler"
	recipehandler "social_backend/internal/feature/recipes/transport/handler"
	"social_backend/internal/platform/http/handler"
	jwtmw "social_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, recipes *recipehandler.RecipeHandler,
	posts *posthandler.PostHandler, ownerGuard gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/recipes", recipes.FindPage)
	r.GET("/recipes/:id", recipes.FindOne)
	r.GET("/users/:userId/recipes", recipes.FindAllByUser)
	r.GET("/posts/:id", posts.FindOne)

	// Routes that require a valid bearer token
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/recipes", recipes.Create)
		auth.POST("/posts", posts.Create)

		// Mutations on a recipe are restricted to its owner
		auth.PATCH("/recipes/:id", ownerGuard, recipes.Update)
		auth.DELETE("/recipes/:id", ownerGuard, recipes.Delete)
	}

	return r
}
