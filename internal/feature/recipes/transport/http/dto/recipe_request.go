// Package dto defines data transfer objects for the recipes feature's HTTP transport layer.
package dto

// RecipeReq represents the request body for creating a recipe.
type RecipeReq struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"max=320"`
	Steps       []string `json:"steps"`
	Ingredients []string `json:"ingredients"`
}

// RecipeUpdateReq represents the partial-update request body. Nil fields
// were absent from the request and leave the stored value unchanged.
type RecipeUpdateReq struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=320"`
	Steps       []string `json:"steps"`
	Ingredients []string `json:"ingredients"`
}

// RecipePageQuery binds the ?page=N listing query parameter.
type RecipePageQuery struct {
	Page int `form:"page"`
}
