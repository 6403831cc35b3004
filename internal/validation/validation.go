// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"ripple/internal/models"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)
)

// All validators return *models.AppError with the VALIDATION_ERROR code so
// services and handlers map failures to 400, never 500.

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return models.NewValidationError("Password must be at least 12 characters long")
	}
	if len(password) > 128 {
		return models.NewValidationError("Password must not exceed 128 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return models.NewValidationError("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return models.NewValidationError("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return models.NewValidationError("Password must contain at least one digit")
	}

	return nil
}

// ValidateUsername checks username length and allowed characters
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return models.NewValidationError("Username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return models.NewValidationError("Username must not exceed 30 characters")
	}

	// Only allow alphanumeric, underscores and hyphens
	if !usernameRegex.MatchString(username) {
		return models.NewValidationError("Username can only contain letters, numbers, underscores, and hyphens")
	}

	// Cannot start or end with underscore/hyphen
	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return models.NewValidationError("Username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return models.NewValidationError("Invalid email format")
	}
	if len(email) > 254 {
		return models.NewValidationError("Email must not exceed 254 characters")
	}
	return nil
}

// ValidatePhoneNumber checks an optional phone number; empty is allowed.
func ValidatePhoneNumber(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRegex.MatchString(phone) {
		return models.NewValidationError("Invalid phone number format")
	}
	return nil
}

// ValidateBirthDate rejects birth dates in the future or older than 150 years.
func ValidateBirthDate(birthDate *time.Time) error {
	if birthDate == nil {
		return nil
	}
	now := time.Now()
	if birthDate.After(now) {
		return models.NewValidationError("Birth date cannot be in the future")
	}
	if birthDate.Before(now.AddDate(-150, 0, 0)) {
		return models.NewValidationError("Birth date is too far in the past")
	}
	return nil
}

// ValidateContent checks that free-text content is present and bounded.
// Whitespace-only content counts as missing.
func ValidateContent(content string, maxLen int) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxLen {
		return models.NewValidationError(fmt.Sprintf("Content too long (max %d characters)", maxLen))
	}
	return nil
}
