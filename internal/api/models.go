package api

import (
	"github.com/google/uuid"

	"github.com/vocadeck/vocadeck-api/internal/domain"
)

// Common request/response structures

// SessionResponse defines the successful response for session creation.
type SessionResponse struct {
	// SessionID is the unique identifier for the created session
	SessionID uuid.UUID `json:"session_id"`

	// Token is the signed session token to present on subsequent requests
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// LoadResponse reports the outcome of a deck load.
type LoadResponse struct {
	// Count is the number of entries now in the session's store
	Count int `json:"count"`
}

// CardResponse wraps the current card view.
type CardResponse struct {
	View domain.CardView `json:"view"`
}
