// Package deck orchestrates the flashcard operations over a session's
// vocabulary store and card view-state: loading entries from the sample set
// or an external spreadsheet, drawing a random entry, and flipping between
// the front and back of the current card.
package deck

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vocadeck/vocadeck-api/internal/domain"
)

// DeckService provides the flashcard operations for one session at a time.
// Each operation resolves the session, runs to completion under the
// session's lock, and leaves prior state intact on any failure.
type DeckService interface {
	// LoadSample replaces the session's entries with the built-in sample
	// set. It has no failure mode beyond an unknown session.
	//
	// Returns:
	//   - (count, nil): the number of entries loaded
	//   - (0, ErrSessionNotFound): if the session does not exist
	LoadSample(ctx context.Context, sessionID uuid.UUID) (int, error)

	// LoadFromSource fetches records from the configured external source,
	// converts them into entries, and replaces the session's entries
	// atomically. Any failure (credential, connection, empty result,
	// malformed record) leaves the previous entries untouched.
	//
	// Returns:
	//   - (count, nil): the number of entries loaded
	//   - (0, ErrSessionNotFound): if the session does not exist
	//   - (0, ErrNoSource): if no external source is configured
	//   - (0, error): wrapping source.ErrCredential, source.ErrConnection,
	//     source.ErrEmptyResult, or domain.ErrBadRecord
	LoadFromSource(ctx context.Context, sessionID uuid.UUID) (int, error)

	// Draw picks one entry uniformly at random and makes it the current
	// card, front side up. The store is never mutated by a draw.
	//
	// Returns:
	//   - (view, nil): the front view of the drawn entry
	//   - (zero, ErrSessionNotFound): if the session does not exist
	//   - (zero, ErrNoEntries): if the session's store is empty; the
	//     current card is left as it was
	Draw(ctx context.Context, sessionID uuid.UUID) (domain.CardView, error)

	// Flip toggles the current card between front and back. Flipping when
	// nothing has been drawn is a no-op, not an error; the empty view is
	// returned unchanged.
	Flip(ctx context.Context, sessionID uuid.UUID) (domain.CardView, error)

	// View returns the current render state without mutating anything.
	View(ctx context.Context, sessionID uuid.UUID) (domain.CardView, error)
}

// Common error types for DeckService
var (
	// ErrSessionNotFound indicates the session does not exist (never
	// created, or expired with its token).
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoEntries indicates a draw was attempted on an empty store.
	ErrNoEntries = errors.New("no entries available to draw")

	// ErrNoSource indicates no external source is configured; only the
	// sample set can be loaded.
	ErrNoSource = errors.New("no external source configured")
)

// ServiceError wraps errors from the deck service with operation context,
// so consumers can differentiate failures with errors.As instead of string
// matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "load_from_source")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewLoadError returns a new ServiceError for the load_from_source operation.
func NewLoadError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "load_from_source",
		Message:   message,
		Err:       err,
	}
}
