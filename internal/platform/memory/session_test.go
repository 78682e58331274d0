package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocadeck/vocadeck-api/internal/domain"
	"github.com/vocadeck/vocadeck-api/internal/store"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	t.Parallel()

	sessions := NewSessionStore(0)

	session := sessions.Create()
	require.NotNil(t, session)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.False(t, session.CreatedAt.IsZero())
	assert.Equal(t, 0, session.Vocabulary.Len(), "new session starts with an empty store")
	assert.Equal(t, domain.ViewEmpty, session.Card.CurrentView().State)

	got, err := sessions.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestSessionStoreGetUnknown(t *testing.T) {
	t.Parallel()

	sessions := NewSessionStore(0)

	_, err := sessions.Get(uuid.New())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionsAreIndependent(t *testing.T) {
	t.Parallel()

	sessions := NewSessionStore(0)
	a := sessions.Create()
	b := sessions.Create()

	a.Vocabulary.LoadSample()

	assert.Equal(t, 5, a.Vocabulary.Len())
	assert.Equal(t, 0, b.Vocabulary.Len(), "loading one session must not affect another")
}

func TestSessionStoreDelete(t *testing.T) {
	t.Parallel()

	sessions := NewSessionStore(0)
	session := sessions.Create()

	sessions.Delete(session.ID)
	_, err := sessions.Get(session.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// Deleting again is a no-op.
	sessions.Delete(session.ID)
}

func TestSessionStoreEvictsExpiredOnGet(t *testing.T) {
	t.Parallel()

	sessions := NewSessionStore(time.Hour)
	now := time.Now()
	sessions.now = func() time.Time { return now }

	session := sessions.Create()

	_, err := sessions.Get(session.ID)
	require.NoError(t, err, "session is live within its ttl")

	now = now.Add(2 * time.Hour)
	_, err = sessions.Get(session.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// The eviction is permanent, not just a filtered lookup.
	now = now.Add(-2 * time.Hour)
	_, err = sessions.Get(session.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionStoreCreateSweepsExpired(t *testing.T) {
	t.Parallel()

	sessions := NewSessionStore(time.Hour)
	now := time.Now()
	sessions.now = func() time.Time { return now }

	old := sessions.Create()

	now = now.Add(2 * time.Hour)
	fresh := sessions.Create()

	assert.NotContains(t, sessions.sessions, old.ID, "create must sweep expired sessions")
	assert.Contains(t, sessions.sessions, fresh.ID)
}

func TestSessionStoreZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	sessions := NewSessionStore(0)
	now := time.Now()
	sessions.now = func() time.Time { return now }

	session := sessions.Create()

	now = now.Add(1000 * time.Hour)
	_, err := sessions.Get(session.ID)
	assert.NoError(t, err)
}
