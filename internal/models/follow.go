package models

import (
	"time"
)

// Follow represents a directed follow edge between two profiles.
// The combination of FollowerID and FolloweeID must be unique; the
// composite index is the authoritative guard against duplicate edges
// under concurrent requests.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follower_followee;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Follower Profile `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Followee Profile `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// FollowPeer is the resolved view of the profile on the other side of a
// follow edge, as returned by follower/following listings.
type FollowPeer struct {
	ProfileID uint   `json:"profile_id"`
	Username  string `json:"username"`
}
