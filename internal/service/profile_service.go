package service

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

const maxBioLen = 500

// ProfileService provides profile business logic.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

type ListProfilesInput struct {
	Username  string
	FirstName string
	LastName  string
	Limit     int
	Offset    int
}

// UpdateProfileInput carries the caller's profile changes. String fields left
// empty are unchanged; a nil BirthDate is unchanged.
type UpdateProfileInput struct {
	UserID      uint
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Bio         string
	ImageURL    string
	BirthDate   *time.Time
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetProfile returns the profile with live follower and following counts.
func (s *ProfileService) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// GetMyProfile returns the caller's own profile by user ID.
func (s *ProfileService) GetMyProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) ListProfiles(ctx context.Context, in ListProfilesInput) ([]*models.Profile, error) {
	filter := repository.ProfileFilter{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	return s.profileRepo.List(ctx, filter, in.Limit, in.Offset)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != profile.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, err
		}
		profile.Username = in.Username
	}
	if in.FirstName != "" {
		profile.FirstName = in.FirstName
	}
	if in.LastName != "" {
		profile.LastName = in.LastName
	}
	if in.PhoneNumber != "" {
		if err := validation.ValidatePhoneNumber(in.PhoneNumber); err != nil {
			return nil, err
		}
		profile.PhoneNumber = in.PhoneNumber
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		profile.Bio = in.Bio
	}
	if in.ImageURL != "" {
		profile.ImageURL = in.ImageURL
	}
	if in.BirthDate != nil {
		if err := validation.ValidateBirthDate(in.BirthDate); err != nil {
			return nil, err
		}
		profile.BirthDate = in.BirthDate
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, in.UserID)
}

// DeleteAccount removes the caller's user together with its profile and all
// content the profile produced.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.profileRepo.GetByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
