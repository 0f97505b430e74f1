// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	passwordRegex = regexp.MustCompile(`^[A-Za-z\d]{6,}$`)
	hasLetter     = regexp.MustCompile(`[A-Za-z]`)
	hasDigit      = regexp.MustCompile(`\d`)
)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks the sign-up password rule: at least 6 characters,
// letters and digits only, with at least one of each.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if !passwordRegex.MatchString(password) ||
		!hasLetter.MatchString(password) ||
		!hasDigit.MatchString(password) {
		return fmt.Errorf("password must be at least 6 characters with letters and digits")
	}
	return nil
}

// ValidateRequired checks that a free-text field is non-empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
