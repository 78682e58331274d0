// Package domain contains the core entities of the vocabulary viewer:
// the Entry value type, conversion of raw source records into entries,
// and the Card view-state with its front/back projection.
//
// The package has no dependencies on storage, transport, or any external
// service; all state transitions here are pure and synchronous.
package domain
