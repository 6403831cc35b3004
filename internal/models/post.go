// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the Ripple application.
type Post struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	ImageURL string  `json:"image_url"`
	AuthorID uint    `gorm:"not null;index" json:"author_id"`
	Author   Profile `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
	// Liked indicates whether the requesting profile liked this post (computed)
	Liked     bool           `gorm:"->;-:migration" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
