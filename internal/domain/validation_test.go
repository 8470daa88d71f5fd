package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ali Traders"))
	assert.ErrorIs(t, ValidateName(""), ErrInvalidName)
	assert.ErrorIs(t, ValidateName("   "), ErrInvalidName)
	assert.ErrorIs(t, ValidateName(strings.Repeat("x", MaxNameLength+1)), ErrInvalidName)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(decimal.Zero))
	assert.NoError(t, ValidateAmount(decimal.NewFromInt(100)))
	assert.ErrorIs(t, ValidateAmount(decimal.NewFromInt(-1)), ErrInvalidAmount)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("owner@khata.example"))
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail("missing@domain"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmail(""), ErrInvalidEmail)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("long-enough-secret"))
	assert.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("p", MaxPasswordLength+1)), ErrWeakPassword)
}
