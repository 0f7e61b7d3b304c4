package models

import "errors"

// Domain-specific errors for document operations
var (
	// ErrItemNotFound indicates the referenced item is not in the document
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateName indicates another item already uses the requested name
	ErrDuplicateName = errors.New("an item with this name already exists")

	// ErrDayNotTracked indicates the item does not repeat on the given day
	ErrDayNotTracked = errors.New("item is not tracked on this day")

	// ErrUnknownWeekday indicates a day name outside monday through sunday
	ErrUnknownWeekday = errors.New("unknown weekday")

	// ErrUnknownKind indicates an item kind other than habit or task
	ErrUnknownKind = errors.New("unknown item kind")
)
