package credstore

import "errors"

var (
	// ErrNotFound is returned when the requested credential doesn't exist.
	ErrNotFound = errors.New("credential not found")

	// ErrEmptyName is returned when an operation is given an empty
	// credential name.
	ErrEmptyName = errors.New("credential name must not be empty")

	// ErrPersistFailed is returned when a durable backend cannot write
	// its state.
	ErrPersistFailed = errors.New("failed to persist credential store")
)
