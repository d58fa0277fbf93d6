// Package handler provides the HTTP handlers for the recipes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/recipes/domain"
	"social_backend/internal/feature/recipes/transport/http/dto"
	"social_backend/internal/feature/recipes/usecase"
	"social_backend/internal/platform/httpapi"
	jwtmw "social_backend/internal/platform/jwt"
)

// RecipesUsecase defines the usecase operations consumed by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type RecipesUsecase interface {
	Create(ctx context.Context, details usecase.RecipeDetails, ownerID string) (usecase.RecipeView, error)
	FindByID(ctx context.Context, id string) (usecase.RecipeView, error)
	FindAll(ctx context.Context, page int) (usecase.RecipePage, error)
	Update(ctx context.Context, id string, patch usecase.RecipePatch) error
	Remove(ctx context.Context, id string) error
	FindAllByUserID(ctx context.Context, userID string) ([]usecase.RecipeView, error)
}

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	recipes RecipesUsecase
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipes RecipesUsecase) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// Create handles POST /recipes. Authentication required; the recipe is
// owned by the requesting user.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.RecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	ownerID := c.GetString(jwtmw.ContextUserID)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.NewError(http.StatusUnauthorized, "authentication required"))
		return
	}

	view, err := h.recipes.Create(c.Request.Context(), usecase.RecipeDetails{
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
		Ingredients: req.Ingredients,
	}, ownerID)
	if err != nil {
		slog.Error("recipe create failed", "error", err, "owner_id", ownerID)
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "failed to create recipe"))
		return
	}

	c.JSON(http.StatusCreated, view)
}

// FindPage handles GET /recipes?page=N.
func (h *RecipeHandler) FindPage(c *gin.Context) {
	var query dto.RecipePageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	page, err := h.recipes.FindAll(c.Request.Context(), query.Page)
	if err != nil {
		slog.Error("recipe listing failed", "error", err, "page", query.Page)
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "failed to list recipes"))
		return
	}

	c.JSON(http.StatusOK, page)
}

// FindOne handles GET /recipes/:id.
func (h *RecipeHandler) FindOne(c *gin.Context) {
	view, err := h.recipes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, httpapi.NewError(http.StatusNotFound, "recipe not found"))
			return
		}
		slog.Error("recipe lookup failed", "error", err, "recipe_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "failed to load recipe"))
		return
	}

	c.JSON(http.StatusOK, view)
}

// Update handles PATCH /recipes/:id. Authentication and ownership are
// enforced by middleware before the handler runs.
func (h *RecipeHandler) Update(c *gin.Context) {
	var req dto.RecipeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	err := h.recipes.Update(c.Request.Context(), c.Param("id"), usecase.RecipePatch{
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, httpapi.NewError(http.StatusNotFound, "recipe not found"))
			return
		}
		slog.Error("recipe update failed", "error", err, "recipe_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "failed to update recipe"))
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /recipes/:id. Removing a nonexistent recipe is a
// successful no-op.
func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.recipes.Remove(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("recipe delete failed", "error", err, "recipe_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "failed to delete recipe"))
		return
	}

	c.Status(http.StatusNoContent)
}

// FindAllByUser handles GET /users/:userId/recipes.
func (h *RecipeHandler) FindAllByUser(c *gin.Context) {
	views, err := h.recipes.FindAllByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		slog.Error("user recipe listing failed", "error", err, "user_id", c.Param("userId"))
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "failed to list recipes"))
		return
	}

	c.JSON(http.StatusOK, views)
}
