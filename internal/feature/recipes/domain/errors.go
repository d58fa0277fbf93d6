// Package domain defines domain-level errors for the recipes feature.
package domain

import "errors"

// ErrRecipeNotFound indicates that no recipe exists for the given id.
// A malformed recipe id maps to the same error: it can never reference a
// stored recipe, so it is rejected before the store is queried.
var ErrRecipeNotFound = errors.New("recipe not found")
