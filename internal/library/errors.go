package library

import "errors"

var (
	// ErrNotFound is returned when no script matches the requested ID.
	ErrNotFound = errors.New("script not found")
	// ErrLocked is returned when another process holds the library write lock.
	ErrLocked = errors.New("library is locked by another scriptdesk process")
)
