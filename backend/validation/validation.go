// Package validation mirrors the rules enforced by the registration frontend
// so the API applies the exact same constraints.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has a local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.ToLower(email))
}

// ValidAge reports whether age falls within the inclusive [min, max] range.
func ValidAge(age, min, max int) bool {
	return age >= min && age <= max
}

// ValidPassword requires at least 8 characters with one letter and one digit.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
