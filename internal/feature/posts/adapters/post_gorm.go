package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"social_backend/internal/feature/posts/domain"
	"social_backend/internal/feature/posts/domain/entity"
	"social_backend/internal/feature/posts/usecase"
)

type postGorm struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) usecase.PostRepository {
	return &postGorm{db: db}
}

func (r *postGorm) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID treats a malformed id the same as an unknown one.
func (r *postGorm) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrPostNotFound
	}

	var post entity.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

var _ usecase.PostRepository = (*postGorm)(nil)
