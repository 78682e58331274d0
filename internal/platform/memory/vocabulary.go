package memory

import (
	"fmt"
	"math/rand"

	"github.com/vocadeck/vocadeck-api/internal/domain"
	"github.com/vocadeck/vocadeck-api/internal/store"
)

// Verify interface compliance at compile time
var _ store.VocabularyStore = (*VocabularyStore)(nil)

// VocabularyStore is the in-memory store.VocabularyStore implementation.
// It is not safe for concurrent use; the owning session serializes access.
type VocabularyStore struct {
	entries []domain.Entry
	intn    func(n int) int
}

// NewVocabularyStore creates an empty in-memory vocabulary store.
// intn supplies the randomness for PickRandom and must return a value in
// [0, n); pass nil to use math/rand. Tests inject a deterministic source.
func NewVocabularyStore(intn func(n int) int) *VocabularyStore {
	if intn == nil {
		intn = rand.Intn
	}
	return &VocabularyStore{intn: intn}
}

// LoadSample implements store.VocabularyStore.LoadSample.
func (s *VocabularyStore) LoadSample() {
	s.entries = store.SampleEntries()
}

// ReplaceAll implements store.VocabularyStore.ReplaceAll. The previous
// contents survive any validation failure; replacement is all-or-nothing.
func (s *VocabularyStore) ReplaceAll(entries []domain.Entry) error {
	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%w: entry %d: %v", store.ErrInvalidEntry, i, err)
		}
	}

	// Copy so later mutation of the caller's slice cannot reach the store.
	replacement := make([]domain.Entry, len(entries))
	copy(replacement, entries)
	s.entries = replacement
	return nil
}

// PickRandom implements store.VocabularyStore.PickRandom.
func (s *VocabularyStore) PickRandom() (*domain.Entry, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return &s.entries[s.intn(len(s.entries))], true
}

// Len implements store.VocabularyStore.Len.
func (s *VocabularyStore) Len() int {
	return len(s.entries)
}
