// Package store defines the storage interfaces and store-level errors for
// the vocabulary viewer. Concrete implementations live under
// internal/platform (see platform/memory for the in-memory store).
package store
