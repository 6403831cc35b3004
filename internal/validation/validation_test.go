package validation

import (
	"strings"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "Sup3rSecretPass", false},
		{"Too short", "Ab1short", true},
		{"Too long", strings.Repeat("Aa1", 50), true},
		{"No uppercase", "alllowercase123", true},
		{"No lowercase", "ALLUPPERCASE123", true},
		{"No digit", "NoDigitsHereAtAll", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "ada_lovelace", false},
		{"Valid with hyphen", "ada-l", false},
		{"Too short", "ab", true},
		{"Too long", strings.Repeat("a", 31), true},
		{"Invalid characters", "ada!lovelace", true},
		{"Leading underscore", "_ada", true},
		{"Trailing hyphen", "ada-", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ada@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@example.com"))
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, ValidatePhoneNumber(""))
	assert.NoError(t, ValidatePhoneNumber("+1 555-867-5309"))
	assert.NoError(t, ValidatePhoneNumber("0123456789"))
	assert.Error(t, ValidatePhoneNumber("abc"))
	assert.Error(t, ValidatePhoneNumber("+"))
}

func TestValidateBirthDate(t *testing.T) {
	assert.NoError(t, ValidateBirthDate(nil))

	past := time.Now().AddDate(-30, 0, 0)
	assert.NoError(t, ValidateBirthDate(&past))

	future := time.Now().AddDate(1, 0, 0)
	assert.Error(t, ValidateBirthDate(&future))

	ancient := time.Now().AddDate(-200, 0, 0)
	assert.Error(t, ValidateBirthDate(&ancient))
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("hello world", 100))
	assert.Error(t, ValidateContent("", 100))
	assert.Error(t, ValidateContent("   \n\t", 100))
	assert.Error(t, ValidateContent(strings.Repeat("x", 101), 100))
}

func TestValidationErrorsCarryTheValidationCode(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)

	failures := []error{
		ValidatePassword("short"),
		ValidateUsername("a!"),
		ValidateEmail("not-an-email"),
		ValidatePhoneNumber("abc"),
		ValidateBirthDate(&future),
		ValidateContent("", 100),
	}
	for _, err := range failures {
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}
