// Package httpapi defines the response bodies shared by all HTTP handlers.
package httpapi

import "net/http"

// ErrorResponse is the body returned for every non-2xx response.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// NewError builds an ErrorResponse whose Error label is the standard
// status text for the given code ("Not Found", "Conflict", ...).
func NewError(status int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
