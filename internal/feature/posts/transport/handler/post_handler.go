package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"social_backend/internal/feature/posts/domain"
	"social_backend/internal/feature/posts/transport/http/dto"
	"social_backend/internal/feature/posts/usecase"
	"social_backend/internal/platform/httpapi"
	jwtmw "social_backend/internal/platform/jwt"
)

// PostsUsecase defines what the handler needs from the application layer.
type PostsUsecase interface {
	CreatePost(ctx context.Context, details usecase.PostDetails, authorID string) (usecase.PostView, error)
	FindPostByID(ctx context.Context, id string) (usecase.PostView, error)
}

type PostHandler struct {
	uc PostsUsecase
}

func NewPostHandler(uc PostsUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

// Create handles POST /posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.NewError(http.StatusBadRequest, err.Error()))
		return
	}

	authorID := c.GetString(jwtmw.ContextUserID)
	if authorID == "" {
		c.JSON(http.StatusUnauthorized, httpapi.NewError(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	details := usecase.PostDetails{Text: req.Text, InReplyTo: req.InReplyTo}
	view, err := h.uc.CreatePost(c.Request.Context(), details, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, httpapi.NewError(http.StatusNotFound, err.Error()))
			return
		}
		slog.Error("failed to create post", "error", err, "remote_addr", c.Request.RemoteAddr)
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "Internal Server Error"))
		return
	}

	c.JSON(http.StatusCreated, view)
}

// FindOne handles GET /posts/:id.
func (h *PostHandler) FindOne(c *gin.Context) {
	view, err := h.uc.FindPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, httpapi.NewError(http.StatusNotFound, err.Error()))
			return
		}
		slog.Error("failed to find post", "error", err, "remote_addr", c.Request.RemoteAddr)
		c.JSON(http.StatusInternalServerError, httpapi.NewError(http.StatusInternalServerError, "Internal Server Error"))
		return
	}

	c.JSON(http.StatusOK, view)
}
