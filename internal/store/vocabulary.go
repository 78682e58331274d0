package store

import (
	"github.com/vocadeck/vocadeck-api/internal/domain"
)

// VocabularyStore is the single source of truth for the entries available to
// one session. Implementations are not required to be safe for concurrent
// use; callers serialize access per session.
//
// The store's lifecycle is simple: it starts empty and is only ever replaced
// wholesale. A failed load must leave the previous contents untouched.
type VocabularyStore interface {
	// LoadSample replaces the store's contents with the built-in sample
	// set. It always succeeds.
	LoadSample()

	// ReplaceAll atomically replaces the store's contents with entries.
	// Every entry must pass domain validation; if any entry is invalid the
	// store is left unchanged and an error wrapping ErrInvalidEntry is
	// returned.
	ReplaceAll(entries []domain.Entry) error

	// PickRandom returns one entry chosen uniformly at random, or false if
	// the store is empty. It is a pure query and never mutates the store.
	// The returned pointer stays valid until the next replacement.
	PickRandom() (*domain.Entry, bool)

	// Len reports the number of entries currently held.
	Len() int
}
