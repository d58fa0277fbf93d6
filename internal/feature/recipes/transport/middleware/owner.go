// Package middleware provides request guards specific to the recipes feature.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/recipes/domain"
	"social_backend/internal/feature/recipes/domain/entity"
	"social_backend/internal/platform/httpapi"
	jwtmw "social_backend/internal/platform/jwt"
)

// RecipeFinder is the repository slice the guard needs: a single lookup
// by id returning domain.ErrRecipeNotFound when absent or malformed.
type RecipeFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Recipe, error)
}

// OwnerRequired returns a middleware that lets a mutating request through
// only when the requester created the target recipe.
//
// A missing requester identity denies (fail closed). A nonexistent recipe
// passes through on purpose: "not found" is not a forbidden case, and the
// downstream handler is the one that surfaces the 404.
func OwnerRequired(recipes RecipeFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(jwtmw.ContextUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httpapi.NewError(http.StatusUnauthorized, "authentication required"))
			return
		}

		recipe, err := recipes.FindByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.Next()
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httpapi.NewError(http.StatusInternalServerError, "failed to load recipe"))
			return
		}

		if recipe.AuthorID != userID {
			c.AbortWithStatusJSON(http.StatusForbidden,
				httpapi.NewError(http.StatusForbidden, "Forbidden resource"))
			return
		}

		c.Next()
	}
}
