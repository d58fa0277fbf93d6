// Package usecase implements the business logic for recipe operations:
// CRUD with a cache-aside Redis layer and offset pagination.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"social_backend/internal/feature/recipes/domain"
	"social_backend/internal/feature/recipes/domain/entity"
)

// PageLimit is the fixed number of recipes per listing page.
const PageLimit = 5

// RecipeRepository abstracts the persistence layer for recipe entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RecipeRepository interface {
	// Create persists a new recipe and fills in its generated id.
	Create(ctx context.Context, r *entity.Recipe) error

	// FindByID retrieves a recipe by id. It returns domain.ErrRecipeNotFound
	// when the id is malformed or no recipe exists.
	FindByID(ctx context.Context, id string) (*entity.Recipe, error)

	// Find returns up to limit recipes starting at offset, in the store's
	// natural order.
	Find(ctx context.Context, offset, limit int) ([]entity.Recipe, error)

	// FindByAuthorID returns every recipe owned by the given user.
	FindByAuthorID(ctx context.Context, authorID string) ([]entity.Recipe, error)

	// Count returns the total number of stored recipes.
	Count(ctx context.Context) (int64, error)

	// Save persists updated fields of an existing recipe.
	Save(ctx context.Context, r *entity.Recipe) error

	// Delete removes a recipe from the store.
	Delete(ctx context.Context, r *entity.Recipe) error
}

// Cache abstracts the side cache keyed by recipe id. Implementations must
// treat a miss as ([]byte(nil), nil), not as an error. The usecase never
// depends on the cache for correctness; every call is best effort.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// RecipeView is the response projection of a recipe. It is what gets
// cached and what handlers serialize.
type RecipeView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Ingredients []string `json:"ingredients"`
}

// PageDetails describes the position of a listing page.
type PageDetails struct {
	Current int `json:"current"`
	Last    int `json:"last"`
	Limit   int `json:"limit"`
}

// RecipePage is one page of the recipe listing.
type RecipePage struct {
	Data []RecipeView `json:"data"`
	Page PageDetails  `json:"page"`
}

// RecipeDetails carries the fields of a new recipe.
type RecipeDetails struct {
	Title       string
	Description string
	Steps       []string
	Ingredients []string
}

// RecipePatch carries a partial update. A nil field means "leave
// unchanged"; slices replace the stored value wholesale when present.
type RecipePatch struct {
	Title       *string
	Description *string
	Steps       []string
	Ingredients []string
}

// RecipesUsecase provides recipe business logic on top of a repository
// and an optional side cache.
type RecipesUsecase struct {
	repo  RecipeRepository
	cache Cache
}

// NewRecipesUsecase creates a new RecipesUsecase.
func NewRecipesUsecase(repo RecipeRepository, cache Cache) *RecipesUsecase {
	return &RecipesUsecase{repo: repo, cache: cache}
}

// Create persists a new recipe owned by ownerID, writes its projection
// through to the cache and returns the projection.
func (u *RecipesUsecase) Create(ctx context.Context, details RecipeDetails, ownerID string) (RecipeView, error) {
	recipe := &entity.Recipe{
		Title:       details.Title,
		Description: details.Description,
		Steps:       details.Steps,
		Ingredients: details.Ingredients,
		AuthorID:    ownerID,
	}
	if err := u.repo.Create(ctx, recipe); err != nil {
		return RecipeView{}, err
	}
	view := mapRecipeToView(recipe)
	u.cacheSet(ctx, recipe.ID, view)
	return view, nil
}

// FindByID serves a recipe read-through: a cache hit returns the cached
// projection without touching the store (which may be stale relative to a
// concurrent update); a miss loads from the store, populates the cache
// and returns the fresh projection.
func (u *RecipesUsecase) FindByID(ctx context.Context, id string) (RecipeView, error) {
	if b, err := u.cache.Get(ctx, id); err == nil && len(b) > 0 {
		var view RecipeView
		if err := json.Unmarshal(b, &view); err == nil {
			return view, nil
		}
		// Delete corrupted cache entry
		if err := u.cache.Del(ctx, id); err != nil {
			slog.Warn("failed to delete corrupted cache entry", "recipe_id", id, "error", err)
		}
	}

	recipe, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return RecipeView{}, err
	}
	view := mapRecipeToView(recipe)
	u.cacheSet(ctx, id, view)
	return view, nil
}

// FindAll returns one page of the recipe listing. Pages are 1-based; any
// page below 1 is clamped to 1. The listing order is the store's natural
// order, so it is only stable across pages if the store preserves it.
func (u *RecipesUsecase) FindAll(ctx context.Context, page int) (RecipePage, error) {
	current := page
	if current < 1 {
		current = 1
	}

	recipes, err := u.repo.Find(ctx, (current-1)*PageLimit, PageLimit)
	if err != nil {
		return RecipePage{}, err
	}
	last, err := u.lastPageNumber(ctx)
	if err != nil {
		return RecipePage{}, err
	}

	data := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		data = append(data, mapRecipeToView(&recipes[i]))
	}
	return RecipePage{
		Data: data,
		Page: PageDetails{Current: current, Last: last, Limit: PageLimit},
	}, nil
}

// Update applies the present patch fields to the recipe and overwrites
// its cache entry before returning, so a subsequent FindByID sees the new
// value. It returns domain.ErrRecipeNotFound when the recipe is absent.
func (u *RecipesUsecase) Update(ctx context.Context, id string, patch RecipePatch) error {
	recipe, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if patch.Title != nil && *patch.Title != "" {
		recipe.Title = *patch.Title
	}
	if patch.Description != nil && *patch.Description != "" {
		recipe.Description = *patch.Description
	}
	if patch.Steps != nil {
		recipe.Steps = patch.Steps
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = patch.Ingredients
	}

	if err := u.repo.Save(ctx, recipe); err != nil {
		return err
	}
	u.cacheSet(ctx, id, mapRecipeToView(recipe))
	return nil
}

// Remove deletes a recipe and its cache entry. A nonexistent (or
// malformed) id is a successful no-op, not an error.
func (u *RecipesUsecase) Remove(ctx context.Context, id string) error {
	recipe, err := u.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, recipe); err != nil {
		return err
	}
	if err := u.cache.Del(ctx, id); err != nil {
		slog.Warn("failed to delete cache entry", "recipe_id", id, "error", err)
	}
	return nil
}

// FindAllByUserID returns every recipe owned by the given user, uncached.
// A user with no recipes yields an empty slice, never an error.
func (u *RecipesUsecase) FindAllByUserID(ctx context.Context, userID string) ([]RecipeView, error) {
	recipes, err := u.repo.FindByAuthorID(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, mapRecipeToView(&recipes[i]))
	}
	return views, nil
}

// lastPageNumber computes the number of the last listing page. Zero
// stored recipes still yield page 1 so the listing always has a page.
func (u *RecipesUsecase) lastPageNumber(ctx context.Context) (int, error) {
	total, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	div := int(total / PageLimit)
	if total != 0 && total%PageLimit == 0 {
		return div, nil
	}
	return div + 1, nil
}

// cacheSet writes a projection through to the cache, best effort.
func (u *RecipesUsecase) cacheSet(ctx context.Context, id string, view RecipeView) {
	b, err := json.Marshal(view)
	if err != nil {
		slog.Warn("failed to marshal recipe for cache", "recipe_id", id, "error", err)
		return
	}
	if err := u.cache.Set(ctx, id, b); err != nil {
		slog.Warn("failed to write recipe cache entry", "recipe_id", id, "error", err)
	}
}

// mapRecipeToView maps the recipe entity into its response projection.
func mapRecipeToView(r *entity.Recipe) RecipeView {
	return RecipeView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Steps:       r.Steps,
		Ingredients: r.Ingredients,
	}
}
