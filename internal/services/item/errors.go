package item

import "errors"

// Item-related validation errors
var (
	ErrEmptyTitle   = errors.New("item title cannot be empty")
	ErrTitleTooLong = errors.New("item title cannot exceed 255 characters")
	ErrNoteTooLong  = errors.New("item note is too long")
	ErrInvalidID    = errors.New("invalid item ID")
)
