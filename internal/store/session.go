package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vocadeck/vocadeck-api/internal/domain"
)

// ErrSessionNotFound is returned when the requested session does not exist.
var ErrSessionNotFound = errors.New("session not found")

// Session pairs one VocabularyStore with one Card view-state. Every client
// session owns an independent pair; nothing is shared across sessions.
type Session struct {
	ID         uuid.UUID
	Vocabulary VocabularyStore
	Card       *domain.Card
	CreatedAt  time.Time

	mu sync.Mutex
}

// Lock serializes access to the session's state. Each user action (load,
// draw, flip) is processed to completion under the lock before the next is
// accepted, so the store and card never see a partial update.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session lock.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// SessionStore manages the lifetime of sessions.
type SessionStore interface {
	// Create allocates a new session with an empty vocabulary store and an
	// empty card.
	Create() *Session

	// Get retrieves a session by ID.
	// Returns ErrSessionNotFound if the session does not exist or has
	// outlived the store's session lifetime.
	Get(id uuid.UUID) (*Session, error)

	// Delete removes a session. Deleting a session that does not exist is
	// a no-op.
	Delete(id uuid.UUID)
}
