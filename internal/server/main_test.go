package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestServer builds a server over an in-memory sqlite database with
// routes mounted on a bare Fiber app.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret-key-for-handler-tests",
		Env:       "test",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}

// createAccount inserts a user with its profile directly and returns the
// profile and a valid bearer token.
func createAccount(t *testing.T, s *Server, db *gorm.DB, username string) (*models.Profile, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecretPass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Email: username + "@example.com", Password: string(hashed)}
	require.NoError(t, db.Create(user).Error)

	profile := &models.Profile{UserID: user.ID, Username: username}
	require.NoError(t, db.Create(profile).Error)

	token, err := s.generateToken(user.ID, profile.ID, profile.Username)
	require.NoError(t, err)

	return profile, token
}

func jsonRequest(method, target string, body any, token string) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
