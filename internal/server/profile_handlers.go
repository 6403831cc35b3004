package server

import (
	"time"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfiles handles GET /api/profiles
// @Summary Browse profiles
// @Description List profiles with optional case-insensitive substring filters
// @Tags profiles
// @Produce json
// @Param username query string false "Username filter"
// @Param first_name query string false "First name filter"
// @Param last_name query string false "Last name filter"
// @Success 200 {array} models.Profile
// @Router /profiles [get]
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	profiles, err := s.profileService.ListProfiles(c.Context(), service.ListProfilesInput{
		Username:  c.Query("username"),
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profiles)
}

// GetProfile handles GET /api/profiles/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetProfile(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// GetProfileFollowers handles GET /api/profiles/:id/followers
func (s *Server) GetProfileFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.followService.Followers(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(followers)
}

// GetProfileFollowing handles GET /api/profiles/:id/following
func (s *Server) GetProfileFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Following(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(following)
}

// GetProfilePosts handles GET /api/profiles/:id/posts
func (s *Server) GetProfilePosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	viewerID, _ := s.optionalProfileID(c)

	posts, err := s.postService.PostsByAuthor(c.Context(), id, page.Limit, page.Offset, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// FollowProfile handles POST /api/profiles/:id/follow
// @Summary Follow a profile
// @Tags profiles
// @Produce json
// @Param id path int true "Target profile ID"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /profiles/{id}/follow [post]
func (s *Server) FollowProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.Follow(c.Context(), s.currentProfileID(c), targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Followed",
	})
}

// UnfollowProfile handles POST /api/profiles/:id/unfollow
func (s *Server) UnfollowProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), s.currentProfileID(c), targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Unfollowed",
	})
}

// GetMyProfile handles GET /api/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMyProfile(c.Context(), s.currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username    string     `json:"username"`
		FirstName   string     `json:"first_name"`
		LastName    string     `json:"last_name"`
		PhoneNumber string     `json:"phone_number"`
		Bio         string     `json:"bio"`
		ImageURL    string     `json:"image_url"`
		BirthDate   *time.Time `json:"birth_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:      s.currentUserID(c),
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		BirthDate:   req.BirthDate,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// DeleteMyAccount handles DELETE /api/me
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.Context(), s.currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Account deleted",
	})
}

// GetMyFollowers handles GET /api/me/followers
func (s *Server) GetMyFollowers(c *fiber.Ctx) error {
	followers, err := s.followService.Followers(c.Context(), s.currentProfileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(followers)
}

// GetMyFollowing handles GET /api/me/following
func (s *Server) GetMyFollowing(c *fiber.Ctx) error {
	following, err := s.followService.Following(c.Context(), s.currentProfileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(following)
}

// GetMyPosts handles GET /api/me/posts
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	profileID := s.currentProfileID(c)

	posts, err := s.postService.PostsByAuthor(c.Context(), profileID, page.Limit, page.Offset, profileID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetFeed handles GET /api/me/feed
// @Summary Personal feed
// @Description Recent posts authored by the profiles the caller follows
// @Tags me
// @Produce json
// @Success 200 {array} models.Post
// @Router /me/feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	posts, err := s.postService.Feed(c.Context(), s.currentProfileID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetLikedPosts handles GET /api/me/liked
func (s *Server) GetLikedPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	posts, err := s.postService.LikedPosts(c.Context(), s.currentProfileID(c), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}
