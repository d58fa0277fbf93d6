package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"social_backend/internal/feature/posts/domain"
	"social_backend/internal/feature/posts/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Post{}))
	return db
}

func TestPostGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &entity.Post{Text: "hello", AuthorID: "author-1", History: []string{}}
	require.NoError(t, repo.Create(ctx, post))
	assert.NotEmpty(t, post.ID)

	found, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Text)
	assert.Equal(t, "author-1", found.AuthorID)
	assert.Nil(t, found.InReplyTo)
}

func TestPostGorm_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "2d1f905e-37c1-4b58-9f0b-8a2f0d2bb2a1")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostGorm_FindByID_MalformedID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	for _, id := range []string{"", "not-a-uuid", "123"} {
		_, err := repo.FindByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrPostNotFound, "id=%q", id)
	}
}

func TestPostGorm_Create_Reply(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	parent := &entity.Post{Text: "op", AuthorID: "author-1"}
	require.NoError(t, repo.Create(ctx, parent))

	reply := &entity.Post{Text: "reply", AuthorID: "author-2", InReplyTo: &parent.ID}
	require.NoError(t, repo.Create(ctx, reply))

	found, err := repo.FindByID(ctx, reply.ID)
	require.NoError(t, err)
	require.NotNil(t, found.InReplyTo)
	assert.Equal(t, parent.ID, *found.InReplyTo)
}
