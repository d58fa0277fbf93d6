// Package entity defines the domain entities for the posts feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a short text post, optionally written in reply to
// another post.
type Post struct {
	// ID is the unique identifier for the post, an opaque UUID string.
	ID string `gorm:"primaryKey;size:36"`

	// Text is the post body.
	Text string `gorm:"size:280;not null"`

	// History keeps the previous versions of the text after edits.
	History []string `gorm:"serializer:json"`

	// AuthorID references the user who wrote the post.
	AuthorID string `gorm:"size:36;index;not null"`

	// InReplyTo references the parent post when this post is a reply.
	InReplyTo *string `gorm:"size:36"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a fresh UUID when none was provided.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
