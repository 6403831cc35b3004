package repository

import (
	"testing"

	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB builds a gorm connection backed by sqlmock, used where the
// generated SQL itself is what the test asserts (ILIKE filters, count
// subqueries).
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// setupTestDB opens an in-memory sqlite database with the full schema, used
// for flow tests where real constraint behavior matters (unique edges,
// cascading deletes).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection only: each sqlite :memory: connection is its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, username string) *models.Profile {
	t.Helper()

	user := &models.User{Email: username + "@example.com", Password: "hashed"}
	require.NoError(t, db.Create(user).Error)

	profile := &models.Profile{UserID: user.ID, Username: username, FirstName: "Test", LastName: "User"}
	require.NoError(t, db.Create(profile).Error)
	return profile
}
