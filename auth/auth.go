// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// GenerateID creates a random UUIDv4 string for a new row
func GenerateID() string {
	return uuid.NewString()
}

// IsValidID reports whether id parses as a UUID
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value
func BearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// ValidateToken checks the provided token against the configured one in constant time.
// An empty configured token disables the check.
func ValidateToken(provided, configured string) error {
	if configured == "" {
		return nil
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidToken
	}
	return nil
}
