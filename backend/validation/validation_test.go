package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("student@example.com"))
	assert.True(t, ValidEmail("First.Last+tag@sub.example.co"))

	assert.False(t, ValidEmail("no-at-sign.example.com"))
	assert.False(t, ValidEmail("missing-domain@"))
	assert.False(t, ValidEmail("no-tld@example"))
	assert.False(t, ValidEmail("spa ce@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidAge(t *testing.T) {
	// Server-side bounds are inclusive on both ends.
	assert.True(t, ValidAge(18, 18, 30))
	assert.True(t, ValidAge(24, 18, 30))
	assert.True(t, ValidAge(30, 18, 30))

	assert.False(t, ValidAge(17, 18, 30))
	assert.False(t, ValidAge(31, 18, 30))
	assert.False(t, ValidAge(0, 18, 30))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("password1"))
	assert.True(t, ValidPassword("1234567a"))

	assert.False(t, ValidPassword("short1"))
	assert.False(t, ValidPassword("lettersonly"))
	assert.False(t, ValidPassword("12345678"))
}
