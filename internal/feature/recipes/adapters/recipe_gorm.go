// Package adapters provides the repository implementations for the recipes feature.
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"social_backend/internal/feature/recipes/domain"
	"social_backend/internal/feature/recipes/domain/entity"
	"social_backend/internal/feature/recipes/usecase"
)

// recipeGorm is the GORM implementation of the RecipeRepository interface.
type recipeGorm struct {
	db *gorm.DB
}

// Compile-time check that recipeGorm implements RecipeRepository.
var _ usecase.RecipeRepository = (*recipeGorm)(nil)

// NewRecipeGorm creates a new recipeGorm on the given gorm.DB connection.
func NewRecipeGorm(db *gorm.DB) *recipeGorm {
	return &recipeGorm{db: db}
}

// Create inserts a new recipe. The entity hook assigns the UUID.
func (r *recipeGorm) Create(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// FindByID retrieves a recipe by id. A malformed id can never reference a
// stored recipe, so it is rejected as domain.ErrRecipeNotFound before the
// store is queried.
func (r *recipeGorm) FindByID(ctx context.Context, id string) (*entity.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}
	var recipe entity.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Find returns up to limit recipes starting at offset, in the store's
// natural order (no explicit sort key).
func (r *recipeGorm) Find(ctx context.Context, offset, limit int) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByAuthorID returns every recipe owned by the given user.
func (r *recipeGorm) FindByAuthorID(ctx context.Context, authorID string) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Count returns the total number of stored recipes.
func (r *recipeGorm) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Recipe{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Save persists all fields of an existing recipe.
func (r *recipeGorm) Save(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// Delete removes a recipe from the store.
func (r *recipeGorm) Delete(ctx context.Context, recipe *entity.Recipe) error {
	return r.db.WithContext(ctx).Delete(recipe).Error
}
