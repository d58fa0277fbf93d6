// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// It uses Gin's binding tags for validation (required, email format,
// bounded lengths, alphanumeric username).
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email,max=320"`
	Username string `json:"username" binding:"required,alphanum,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}
