// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/auth/domain"
	"social_backend/internal/feature/auth/transport/http/dto"
	"social_backend/internal/feature/auth/usecase"
	"social_backend/internal/platform/httpapi"
)

// AuthUsecase defines the usecase operations consumed by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns its identity plus an access token.
	Register(ctx context.Context, details usecase.RegisterDetails) (usecase.AuthView, error)
	// Login authenticates the user and returns its identity plus a fresh access token.
	Login(ctx context.Context, email, password string) (usecase.AuthView, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - 400 on validation errors
// - 409 when the email or username is already taken
// - 201 with the identity fields and access token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	view, err := h.auth.Register(c.Request.Context(), usecase.RegisterDetails{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, httpapi.NewError(http.StatusConflict, "user already exists"))
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "registration failed"))
		return
	}

	slog.Info("user registered", "user_id", view.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, view)
}

// Login handles the user login endpoint.
// - 400 on validation errors
// - 401 on invalid credentials (same response for unknown email and wrong password)
// - 200 with the identity fields and access token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	view, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			slog.Warn("login rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, httpapi.NewError(http.StatusUnauthorized, "invalid credentials"))
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "login failed"))
		return
	}

	slog.Info("user login successful", "user_id", view.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, view)
}
