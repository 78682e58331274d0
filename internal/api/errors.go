package api

import (
	"errors"
	"net/http"

	"github.com/vocadeck/vocadeck-api/internal/domain"
	"github.com/vocadeck/vocadeck-api/internal/service/deck"
	"github.com/vocadeck/vocadeck-api/internal/service/session"
	"github.com/vocadeck/vocadeck-api/internal/source"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Session errors: a dead or unknown session means the token no longer
	// buys anything, so the client must create a new session.
	case errors.Is(err, session.ErrInvalidToken),
		errors.Is(err, session.ErrExpiredToken),
		errors.Is(err, session.ErrMissingToken),
		errors.Is(err, deck.ErrSessionNotFound):
		return http.StatusUnauthorized

	// Upstream source failures
	case errors.Is(err, source.ErrCredential),
		errors.Is(err, source.ErrConnection):
		return http.StatusBadGateway

	// The source answered but its content is unusable
	case errors.Is(err, source.ErrEmptyResult),
		errors.Is(err, domain.ErrBadRecord):
		return http.StatusUnprocessableEntity

	// State conflicts
	case errors.Is(err, deck.ErrNoEntries),
		errors.Is(err, deck.ErrNoSource):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, session.ErrExpiredToken):
		return "Session token expired"

	case errors.Is(err, session.ErrInvalidToken),
		errors.Is(err, session.ErrMissingToken):
		return "Invalid session token"

	case errors.Is(err, deck.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, source.ErrCredential):
		return "Could not authenticate with the spreadsheet source"

	case errors.Is(err, source.ErrConnection):
		return "Could not reach the spreadsheet source"

	case errors.Is(err, source.ErrEmptyResult):
		return "The spreadsheet contains no entries"

	case errors.Is(err, domain.ErrBadRecord):
		return "The spreadsheet rows do not match the expected columns"

	case errors.Is(err, deck.ErrNoEntries):
		return "No entries loaded; load the sample set or a source first"

	case errors.Is(err, deck.ErrNoSource):
		return "No external source is configured"

	default:
		return "An unexpected error occurred"
	}
}
