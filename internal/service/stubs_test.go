package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn        func(context.Context, uint, uint) error
	deleteFn        func(context.Context, uint, uint) error
	existsFn        func(context.Context, uint, uint) (bool, error)
	listFollowersFn func(context.Context, uint) ([]models.FollowPeer, error)
	listFollowingFn func(context.Context, uint) ([]models.FollowPeer, error)
	followeeIDsFn   func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID uint) error {
	return s.createFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) error {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, profileID uint) ([]models.FollowPeer, error) {
	return s.listFollowersFn(ctx, profileID)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, profileID uint) ([]models.FollowPeer, error) {
	return s.listFollowingFn(ctx, profileID)
}
func (s *followRepoStub) FolloweeIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followeeIDsFn(ctx, followerID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:        func(_ context.Context, _, _ uint) error { return nil },
		deleteFn:        func(_ context.Context, _, _ uint) error { return nil },
		existsFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listFollowersFn: func(_ context.Context, _ uint) ([]models.FollowPeer, error) { return nil, nil },
		listFollowingFn: func(_ context.Context, _ uint) ([]models.FollowPeer, error) { return nil, nil },
		followeeIDsFn:   func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Profile, error)
	getBasicByIDFn  func(context.Context, uint) (*models.Profile, error)
	getByUserIDFn   func(context.Context, uint) (*models.Profile, error)
	getByUsernameFn func(context.Context, string) (*models.Profile, error)
	updateFn        func(context.Context, *models.Profile) error
	listFn          func(context.Context, repository.ProfileFilter, int, int) ([]*models.Profile, error)
}

func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) GetBasicByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getBasicByIDFn(ctx, id)
}
func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) List(ctx context.Context, filter repository.ProfileFilter, limit, offset int) ([]*models.Profile, error) {
	return s.listFn(ctx, filter, limit, offset)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.Profile, error) { return &models.Profile{ID: id}, nil },
		getBasicByIDFn:  func(_ context.Context, id uint) (*models.Profile, error) { return &models.Profile{ID: id}, nil },
		getByUserIDFn:   func(_ context.Context, userID uint) (*models.Profile, error) { return &models.Profile{ID: userID, UserID: userID}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.Profile, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Profile) error { return nil },
		listFn: func(_ context.Context, _ repository.ProfileFilter, _, _ int) ([]*models.Profile, error) {
			return nil, nil
		},
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint, uint) (*models.Post, error)
	listFn    func(context.Context, repository.PostFilter, int, int, uint) ([]*models.Post, error)
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uint) error
	isLikedFn func(context.Context, uint, uint) (bool, error)
	likeFn    func(context.Context, uint, uint) error
	unlikeFn  func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) List(ctx context.Context, filter repository.PostFilter, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.listFn(ctx, filter, limit, offset, viewerID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, profileID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, profileID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, profileID, postID uint) error {
	return s.likeFn(ctx, profileID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, profileID, postID uint) error {
	return s.unlikeFn(ctx, profileID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn: func(_ context.Context, _ repository.PostFilter, _, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
		updateFn:  func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		isLikedFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:    func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:  func(_ context.Context, _, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	createWithProfileFn func(context.Context, *models.User, *models.Profile) error
	deleteFn            func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	return s.createWithProfileFn(ctx, user, profile)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:           func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:        func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createWithProfileFn: func(_ context.Context, _ *models.User, _ *models.Profile) error { return nil },
		deleteFn:            func(_ context.Context, _ uint) error { return nil },
	}
}
