package usecase

import (
	"context"

	"social_backend/internal/feature/posts/domain/entity"
)

// PostRepository abstracts persistence for posts.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id string) (*entity.Post, error)
}

// PostView is the read model returned to transports.
type PostView struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Author    string   `json:"author"`
	InReplyTo *string  `json:"inReplyTo,omitempty"`
	History   []string `json:"history"`
}

// PostDetails carries the fields needed to publish a post.
type PostDetails struct {
	Text      string
	InReplyTo *string
}

type PostsUsecase struct {
	repo PostRepository
}

func NewPostsUsecase(repo PostRepository) *PostsUsecase {
	return &PostsUsecase{repo: repo}
}

// CreatePost persists a new post on behalf of authorID. When the post
// replies to another one, the parent must exist.
func (u *PostsUsecase) CreatePost(ctx context.Context, details PostDetails, authorID string) (PostView, error) {
	if details.InReplyTo != nil {
		if _, err := u.repo.FindByID(ctx, *details.InReplyTo); err != nil {
			return PostView{}, err
		}
	}

	post := &entity.Post{
		Text:      details.Text,
		AuthorID:  authorID,
		InReplyTo: details.InReplyTo,
		History:   []string{},
	}
	if err := u.repo.Create(ctx, post); err != nil {
		return PostView{}, err
	}
	return mapPostToView(post), nil
}

// FindPostByID returns a single post projection.
func (u *PostsUsecase) FindPostByID(ctx context.Context, id string) (PostView, error) {
	post, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return PostView{}, err
	}
	return mapPostToView(post), nil
}

func mapPostToView(post *entity.Post) PostView {
	history := post.History
	if history == nil {
		history = []string{}
	}
	return PostView{
		ID:        post.ID,
		Text:      post.Text,
		Author:    post.AuthorID,
		InReplyTo: post.InReplyTo,
		History:   history,
	}
}
