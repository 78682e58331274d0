// Package session issues and validates the signed tokens that tie an HTTP
// client to its server-side store and card pair. Sessions are anonymous;
// the token only proves the client created the session it names.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// TokenService defines operations for managing session tokens.
type TokenService interface {
	// GenerateToken creates a signed token naming the given session.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, sessionID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// session ID it names. Returns an error if validation fails (expired,
	// invalid signature, malformed).
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// Common session token errors
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("session token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("session token is missing")
)
