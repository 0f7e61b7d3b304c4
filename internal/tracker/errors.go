package tracker

import "errors"

// Tracker-related errors
var (
	// Validation errors
	ErrEmptyName    = errors.New("item name cannot be empty")
	ErrNameTooLong  = errors.New("item name cannot exceed 255 characters")
	ErrEmptyID      = errors.New("item ID cannot be empty")
	ErrInvalidKind  = errors.New("item kind must be habit or task")
	ErrInvalidDay   = errors.New("invalid weekday")
	ErrTaskNeedsDay = errors.New("a task must be scheduled on at least one day")
)
