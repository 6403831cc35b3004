// Package service implements the business logic layer of the application.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
)

// FollowService provides follow graph business logic.
type FollowService struct {
	followRepo  repository.FollowRepository
	profileRepo repository.ProfileRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, profileRepo repository.ProfileRepository) *FollowService {
	return &FollowService{
		followRepo:  followRepo,
		profileRepo: profileRepo,
	}
}

// Follow creates a follow edge from the caller's profile to the target.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.profileRepo.GetBasicByID(ctx, targetID); err != nil {
		return err
	}

	if err := s.followRepo.Create(ctx, followerID, targetID); err != nil {
		observability.RecordFollowEvent("follow", resultLabel(err))
		return err
	}
	observability.RecordFollowEvent("follow", "success")
	return nil
}

// Unfollow removes the follow edge from the caller's profile to the target.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	if _, err := s.profileRepo.GetBasicByID(ctx, targetID); err != nil {
		return err
	}

	if err := s.followRepo.Delete(ctx, followerID, targetID); err != nil {
		observability.RecordFollowEvent("unfollow", resultLabel(err))
		return err
	}
	observability.RecordFollowEvent("unfollow", "success")
	return nil
}

// Followers returns the profiles following the given profile.
func (s *FollowService) Followers(ctx context.Context, profileID uint) ([]models.FollowPeer, error) {
	if _, err := s.profileRepo.GetBasicByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, profileID)
}

// Following returns the profiles the given profile follows.
func (s *FollowService) Following(ctx context.Context, profileID uint) ([]models.FollowPeer, error) {
	if _, err := s.profileRepo.GetBasicByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, profileID)
}

// resultLabel maps an error to the metrics result label.
func resultLabel(err error) string {
	if appErr, ok := err.(*models.AppError); ok {
		switch appErr.Code {
		case models.CodeConflict:
			return "conflict"
		case models.CodeNotFound:
			return "not_found"
		case models.CodeValidation:
			return "invalid"
		}
	}
	return "error"
}
