package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-]{1,31}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername checks if a username is valid
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ValidationError{Field: "username", Message: "username is required"}
	}
	if !usernameRegex.MatchString(username) {
		return ValidationError{Field: "username", Message: "username must be 2-32 lowercase letters, digits, hyphens or underscores"}
	}
	return nil
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateChildName checks if a child's display name is valid
func ValidateChildName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "childName", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "childName", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateAvatar checks if an avatar color is one we recognize
func ValidateAvatar(avatar string) error {
	switch strings.ToLower(strings.TrimSpace(avatar)) {
	case "red", "blue", "green", "yellow", "purple", "orange":
		return nil
	}
	return ValidationError{Field: "avatar", Message: "unknown avatar color"}
}

// ValidateScore checks that a quiz score is within the possible range
func ValidateScore(score, total int) error {
	if total <= 0 {
		return ValidationError{Field: "total", Message: "total must be positive"}
	}
	if score < 0 || score > total {
		return ValidationError{Field: "score", Message: "score must be between 0 and the question count"}
	}
	return nil
}
