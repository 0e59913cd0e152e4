package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Compiled regular expressions for validation
var (
	// Tab and chart ids: lowercase words joined by underscores or hyphens
	validIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

	// Country names as they appear on the route table, accents included
	validPlaceNamePattern = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const (
	maxIDLength        = 64
	maxPlaceNameLength = 64
	maxUsernameLength  = 64
	// bcrypt ignores bytes past 72, reject them instead of truncating silently
	maxPasswordBytes   = 72
)

// ValidateID validates a tab or chart id
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > maxIDLength {
		return errors.New("id too long (max 64 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidatePlaceName validates a country or city name from the route table. Empty is allowed.
func ValidatePlaceName(name string) error {
	if name == "" {
		return nil
	}

	if utf8.RuneCountInString(name) > maxPlaceNameLength {
		return errors.New("name too long (max 64 characters)")
	}

	if dangerousPattern.MatchString(name) || !validPlaceNamePattern.MatchString(name) {
		return errors.New("name contains invalid characters")
	}

	return nil
}

// ValidateCredentials checks the shape of a login form, not the credentials themselves
func ValidateCredentials(username, password string) map[string][]string {
	fieldErrors := make(map[string][]string)

	switch {
	case username == "":
		fieldErrors["username"] = append(fieldErrors["username"], "username cannot be empty")
	case utf8.RuneCountInString(username) > maxUsernameLength:
		fieldErrors["username"] = append(fieldErrors["username"], "username too long (max 64 characters)")
	case dangerousPattern.MatchString(username):
		fieldErrors["username"] = append(fieldErrors["username"], "username contains invalid characters")
	}

	switch {
	case password == "":
		fieldErrors["password"] = append(fieldErrors["password"], "password cannot be empty")
	case len(password) > maxPasswordBytes:
		fieldErrors["password"] = append(fieldErrors["password"], "password too long (max 72 bytes)")
	}

	return fieldErrors
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}
