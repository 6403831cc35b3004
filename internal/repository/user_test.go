package repository

import (
	"context"
	"regexp"
	"testing"

	"ripple/internal/cache"
	"ripple/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("ada@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "ada@example.com"))

		user, err := repo.GetByEmail(ctx, "ada@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, uint(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("nobody@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CreateWithProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "ada@example.com", Password: "hashed"}
	profile := &models.Profile{Username: "ada_lovelace"}

	err := repo.CreateWithProfile(ctx, user, profile)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, user.ID, profile.UserID)

	t.Run("Duplicate email conflicts", func(t *testing.T) {
		dup := &models.User{Email: "ada@example.com", Password: "hashed"}
		err := repo.CreateWithProfile(ctx, dup, &models.Profile{Username: "ada_two"})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("Duplicate username conflicts and rolls back the user", func(t *testing.T) {
		dup := &models.User{Email: "grace@example.com", Password: "hashed"}
		err := repo.CreateWithProfile(ctx, dup, &models.Profile{Username: "ada_lovelace"})

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)

		// The user insert must not survive the failed transaction.
		var count int64
		db.Model(&models.User{}).Where("email = ?", "grace@example.com").Count(&count)
		assert.Zero(t, count)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	profile := createTestProfile(t, db, "ephemeral")
	peer := createTestProfile(t, db, "peer")

	post := &models.Post{Content: "soon gone", AuthorID: profile.ID}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: peer.ID, FolloweeID: profile.ID}).Error)
	require.NoError(t, db.Create(&models.Like{ProfileID: profile.ID, PostID: post.ID}).Error)

	err := repo.Delete(ctx, profile.UserID)
	require.NoError(t, err)

	var users, profiles, posts, follows, likes int64
	db.Model(&models.User{}).Where("id = ?", profile.UserID).Count(&users)
	db.Model(&models.Profile{}).Where("id = ?", profile.ID).Count(&profiles)
	db.Model(&models.Post{}).Where("author_id = ?", profile.ID).Count(&posts)
	db.Model(&models.Follow{}).Where("followee_id = ?", profile.ID).Count(&follows)
	db.Model(&models.Like{}).Where("profile_id = ?", profile.ID).Count(&likes)
	assert.Zero(t, users)
	assert.Zero(t, profiles)
	assert.Zero(t, posts)
	assert.Zero(t, follows)
	assert.Zero(t, likes)
}

func TestUserRepository_DeleteDropsCachedProfile(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	profileRepo := NewProfileRepository(db)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	prev := cache.GetClient()
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(prev) })

	profile := createTestProfile(t, db, "ephemeral")

	// Warm the cache, then delete the account.
	cached, err := profileRepo.GetBasicByID(ctx, profile.ID)
	require.NoError(t, err)
	require.Equal(t, "ephemeral", cached.Username)
	require.True(t, mr.Exists(cache.ProfileKey(profile.ID)))

	require.NoError(t, userRepo.Delete(ctx, profile.UserID))

	// The cached row must not outlive the profile.
	assert.False(t, mr.Exists(cache.ProfileKey(profile.ID)))

	_, err = profileRepo.GetBasicByID(ctx, profile.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
}
