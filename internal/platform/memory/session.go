package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vocadeck/vocadeck-api/internal/domain"
	"github.com/vocadeck/vocadeck-api/internal/store"
)

// Verify interface compliance at compile time
var _ store.SessionStore = (*SessionStore)(nil)

// SessionStore is the in-memory store.SessionStore implementation. It is
// safe for concurrent use; the registry itself is guarded while each
// session's state is serialized by the session's own lock.
//
// Sessions older than ttl are evicted: lookups treat them as missing, and
// each Create sweeps the registry so abandoned sessions cannot accumulate
// in a long-running server. The ttl should match the session token
// lifetime, since an expired token makes its session unreachable anyway.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*store.Session
	ttl      time.Duration
	now      func() time.Time // Injectable for testing
}

// NewSessionStore creates an empty session registry. Sessions expire ttl
// after creation; a ttl of zero or less disables eviction.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*store.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create implements store.SessionStore.Create. It also sweeps expired
// sessions, bounding the registry without a background reaper.
func (s *SessionStore) Create() *store.Session {
	session := &store.Session{
		ID:         uuid.New(),
		Vocabulary: NewVocabularyStore(nil),
		Card:       domain.NewCard(),
		CreatedAt:  s.now(),
	}

	s.mu.Lock()
	for id, existing := range s.sessions {
		if s.expired(existing) {
			delete(s.sessions, id)
		}
	}
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get implements store.SessionStore.Get. Expired sessions are evicted on
// lookup and reported as not found.
func (s *SessionStore) Get(id uuid.UUID) (*store.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, store.ErrSessionNotFound
	}

	if s.expired(session) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, store.ErrSessionNotFound
	}

	return session, nil
}

// Delete implements store.SessionStore.Delete.
func (s *SessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionStore) expired(session *store.Session) bool {
	if s.ttl <= 0 {
		return false
	}
	return s.now().Sub(session.CreatedAt) > s.ttl
}
