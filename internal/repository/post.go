package repository

import (
	"context"
	"errors"

	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostFilter holds optional filters for post listings. Content and
// AuthorUsername are case-insensitive substring matches, AND-combined.
// The scoping fields restrict the listing to a set of authors or to posts
// liked by a profile; zero values leave the listing unrestricted.
type PostFilter struct {
	Content        string
	AuthorUsername string
	AuthorID       uint
	AuthorIDs      []uint
	LikedBy        uint
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	List(ctx context.Context, filter PostFilter, limit, offset int, viewerID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, profileID, postID uint) (bool, error)
	// Like inserts the like row; the unique index on (profile_id, post_id)
	// is the authoritative duplicate guard (see FollowRepository.Create).
	Like(ctx context.Context, profileID, postID uint) error
	// Unlike removes the like row; zero RowsAffected is reported as not found.
	Unlike(ctx context.Context, profileID, postID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if viewerID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.profile_id = ?) as liked", viewerID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter, limit, offset int, viewerID uint) ([]*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()
	var posts []*models.Post
	query := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("Author")

	if filter.Content != "" {
		query = query.Where("posts.content ILIKE ?", "%"+filter.Content+"%")
	}
	if filter.AuthorUsername != "" {
		query = query.
			Joins("JOIN profiles ON profiles.id = posts.author_id").
			Where("profiles.username ILIKE ?", "%"+filter.AuthorUsername+"%")
	}
	if filter.AuthorID != 0 {
		query = query.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.AuthorIDs != nil {
		if len(filter.AuthorIDs) == 0 {
			return []*models.Post{}, nil
		}
		query = query.Where("posts.author_id IN ?", filter.AuthorIDs)
	}
	if filter.LikedBy != 0 {
		query = query.
			Joins("JOIN likes ON likes.post_id = posts.id").
			Where("likes.profile_id = ?", filter.LikedBy)
	}

	err := query.Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("update", "posts")()
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "posts")()
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, profileID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("profile_id = ? AND post_id = ?", profileID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) Like(ctx context.Context, profileID, postID uint) error {
	defer observability.TrackQuery("insert", "likes")()
	like := models.Like{
		ProfileID: profileID,
		PostID:    postID,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return models.NewConflictError("You have already liked this post")
		}
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewConflictError("You have already liked this post")
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, profileID, postID uint) error {
	defer observability.TrackQuery("delete", "likes")()
	result := r.db.WithContext(ctx).
		Where("profile_id = ? AND post_id = ?", profileID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.AppError{
			Code:    models.CodeNotFound,
			Message: "You have not liked this post",
		}
	}
	return nil
}
