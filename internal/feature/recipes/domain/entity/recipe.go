// Package entity defines the domain entities for the recipes feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe represents a recipe created by a user.
type Recipe struct {
	// ID is the unique identifier for the recipe, an opaque UUID string.
	ID string `gorm:"primaryKey;size:36"`

	// Title is the recipe's display name.
	Title string `gorm:"size:255;not null"`

	// Description is a short free-form summary.
	Description string `gorm:"size:320"`

	// Steps is the ordered list of preparation steps.
	Steps []string `gorm:"serializer:json"`

	// Ingredients is the ordered list of ingredients.
	Ingredients []string `gorm:"serializer:json"`

	// AuthorID references the owning user. It is immutable after creation
	// and only the owner may mutate or delete the recipe.
	AuthorID string `gorm:"size:36;index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
