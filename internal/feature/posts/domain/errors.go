// Package domain defines domain-level errors for the posts feature.
package domain

import "errors"

// ErrPostNotFound indicates that no post exists for the given id.
// A malformed post id maps to the same error.
var ErrPostNotFound = errors.New("post not found")
