package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNoEntries is returned when an operation needs at least one entry
	// (e.g., drawing a card) but the store is empty.
	ErrNoEntries = errors.New("no entries available")

	// ErrInvalidEntry is returned when an entry fails domain validation
	// before being stored. Check the wrapped error for details.
	ErrInvalidEntry = errors.New("invalid entry")
)
