package models

import (
	"time"
)

// Like represents a profile's like on a post.
// The combination of ProfileID and PostID must be unique; duplicate-like
// races resolve at the storage layer, not in application code.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;uniqueIndex:idx_profile_post" json:"profile_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_profile_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Post    Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}
