// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

// CreateAccount constructs and persists a sample user with its profile.
// Optional override functions may modify the generated profile before saving.
func (f *Factory) CreateAccount(overrides ...func(*models.Profile)) (*models.Profile, error) {
	username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))

	user := &models.User{
		Email: fmt.Sprintf("%s@example.com", username),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}

	birthDate := gofakeit.DateRange(
		time.Now().AddDate(-60, 0, 0),
		time.Now().AddDate(-18, 0, 0),
	)

	profile := &models.Profile{
		UserID:    user.ID,
		Username:  username,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Bio:       gofakeit.Sentence(10),
		ImageURL:  fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		BirthDate: &birthDate,
	}

	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreatePost constructs and persists a sample post for the given author.
func (f *Factory) CreatePost(author *models.Profile, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Content:  gofakeit.Paragraph(1, 3, 5, "\n"),
		AuthorID: author.ID,
	}

	// roughly 40% of posts carry an image
	if gofakeit.Number(0, 9) < 4 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(gofakeit.Number(0, maxDays)) * 24 * time.Hour).
		Add(-time.Duration(gofakeit.Number(0, 23)) * time.Hour).
		Add(-time.Duration(gofakeit.Number(0, 59)) * time.Minute)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the provided
// post authored by the provided profile.
func (f *Factory) CreateComment(author *models.Profile, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:  gofakeit.Sentence(8),
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `profile` on `post`. Duplicate pairs are
// ignored so random engagement seeding never trips the unique index.
func (f *Factory) CreateLike(profile *models.Profile, post *models.Post) error {
	like := &models.Like{
		ProfileID: profile.ID,
		PostID:    post.ID,
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// CreateFollow persists a follow edge from `follower` to `followee`.
// Duplicate edges are ignored.
func (f *Factory) CreateFollow(follower, followee *models.Profile) error {
	follow := &models.Follow{
		FollowerID: follower.ID,
		FolloweeID: followee.ID,
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}
