package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

const maxPostContentLen = 10000

// PostService provides post and like business logic.
type PostService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

type CreatePostInput struct {
	AuthorID uint
	Content  string
	ImageURL string
}

type ListPostsInput struct {
	Content        string
	AuthorUsername string
	Limit          int
	Offset         int
	ViewerID       uint
}

type UpdatePostInput struct {
	ProfileID uint
	PostID    uint
	Content   string
	ImageURL  string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, followRepo repository.FollowRepository) *PostService {
	return &PostService{
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidateContent(in.Content, maxPostContentLen); err != nil {
		return nil, err
	}

	post := &models.Post{
		Content:  in.Content,
		ImageURL: in.ImageURL,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.AuthorID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, viewerID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	// Listings always read live state. Cached pages would need the limit,
	// offset and every filter in the key, and would still serve stale author
	// usernames after a profile rename.
	filter := repository.PostFilter{
		Content:        in.Content,
		AuthorUsername: in.AuthorUsername,
	}
	return s.postRepo.List(ctx, filter, in.Limit, in.Offset, in.ViewerID)
}

// Feed returns recent posts authored by the profiles the viewer follows.
func (s *PostService) Feed(ctx context.Context, profileID uint, limit, offset int) ([]*models.Post, error) {
	followeeIDs, err := s.followRepo.FolloweeIDs(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if len(followeeIDs) == 0 {
		return []*models.Post{}, nil
	}
	return s.postRepo.List(ctx, repository.PostFilter{AuthorIDs: followeeIDs}, limit, offset, profileID)
}

// PostsByAuthor returns the posts authored by the given profile.
func (s *PostService) PostsByAuthor(ctx context.Context, authorID uint, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{AuthorID: authorID}, limit, offset, viewerID)
}

// LikedPosts returns the posts the given profile has liked.
func (s *PostService) LikedPosts(ctx context.Context, profileID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{LikedBy: profileID}, limit, offset, profileID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.ProfileID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if err := validation.ValidateContent(in.Content, maxPostContentLen); err != nil {
		return nil, err
	}

	post.Content = in.Content
	post.ImageURL = in.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, in.PostID, in.ProfileID)
}

func (s *PostService) DeletePost(ctx context.Context, profileID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, profileID)
	if err != nil {
		return err
	}
	if post.AuthorID != profileID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records a like from the profile on the post.
func (s *PostService) LikePost(ctx context.Context, profileID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.AuthorID == profileID {
		return models.NewValidationError("You cannot like your own post")
	}

	if err := s.postRepo.Like(ctx, profileID, postID); err != nil {
		observability.RecordEngagementEvent("like", resultLabel(err))
		return err
	}
	observability.RecordEngagementEvent("like", "success")
	return nil
}

// UnlikePost removes the profile's like from the post.
func (s *PostService) UnlikePost(ctx context.Context, profileID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return err
	}

	if err := s.postRepo.Unlike(ctx, profileID, postID); err != nil {
		observability.RecordEngagementEvent("unlike", resultLabel(err))
		return err
	}
	observability.RecordEngagementEvent("unlike", "success")
	return nil
}
