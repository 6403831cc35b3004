package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	// Create inserts the edge. The unique index on (follower_id, followee_id)
	// is the authoritative duplicate guard: the insert uses ON CONFLICT
	// DO NOTHING and a zero RowsAffected is reported as a conflict, so a
	// racer that loses the pre-check race still gets the right answer.
	Create(ctx context.Context, followerID, followeeID uint) error
	// Delete removes the edge; a zero RowsAffected is reported as not found.
	Delete(ctx context.Context, followerID, followeeID uint) error
	Exists(ctx context.Context, followerID, followeeID uint) (bool, error)
	ListFollowers(ctx context.Context, profileID uint) ([]models.FollowPeer, error)
	ListFollowing(ctx context.Context, profileID uint) ([]models.FollowPeer, error)
	// FolloweeIDs returns the profile IDs the given profile follows.
	FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followeeID uint) error {
	follow := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return models.NewConflictError("You are already following this profile")
		}
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewConflictError("You are already following this profile")
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.AppError{
			Code:    models.CodeNotFound,
			Message: "You are not following this profile",
		}
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, profileID uint) ([]models.FollowPeer, error) {
	var peers []models.FollowPeer
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Select("follows.follower_id as profile_id, profiles.username as username").
		Joins("JOIN profiles ON profiles.id = follows.follower_id").
		Where("follows.followee_id = ?", profileID).
		Order("profiles.username ASC").
		Scan(&peers).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return peers, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, profileID uint) ([]models.FollowPeer, error) {
	var peers []models.FollowPeer
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Select("follows.followee_id as profile_id, profiles.username as username").
		Joins("JOIN profiles ON profiles.id = follows.followee_id").
		Where("follows.follower_id = ?", profileID).
		Order("profiles.username ASC").
		Scan(&peers).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return peers, nil
}

func (r *followRepository) FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
