package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers use
// errors.Is so the underlying storage error stays attached via %w.
var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned on unique or primary key violations.
	ErrDuplicate = errors.New("duplicate record")
)
