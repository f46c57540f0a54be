package models

import "errors"

// Domain-specific errors shared by the store and the services
var (
	// ErrItemNotFound indicates the referenced item no longer exists in the store
	ErrItemNotFound = errors.New("item not found")

	// ErrUnknownColumn indicates a move or create referenced a column key
	// that is not part of the board configuration
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidIndex indicates a negative target index
	ErrInvalidIndex = errors.New("invalid index: must be >= 0")

	// ErrStaleRevision indicates the board changed between the reconciler's
	// read and its write; the caller should re-read and retry explicitly
	ErrStaleRevision = errors.New("board revision changed during move")
)
