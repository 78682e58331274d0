package source

import "errors"

// Failure taxonomy for source access. Every failure is recoverable by the
// user re-triggering the action; none of these is fatal to the process.
var (
	// ErrCredential indicates the source rejected or could not obtain the
	// configured credentials.
	ErrCredential = errors.New("source credential error")

	// ErrConnection indicates the source could not be reached or read.
	ErrConnection = errors.New("source connection error")

	// ErrEmptyResult indicates the source was reachable but returned zero
	// records.
	ErrEmptyResult = errors.New("source returned no records")
)
