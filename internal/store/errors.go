package store

import "errors"

// Persistence errors for the tracker file
var (
	// ErrCorrupt indicates the tracker file is absent, unreadable, or fails validation.
	// Load wraps it together with the underlying cause.
	ErrCorrupt = errors.New("tracker file is corrupt")

	// ErrIO indicates the tracker file could not be written to disk
	ErrIO = errors.New("tracker file could not be written")
)
