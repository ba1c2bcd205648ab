package authstate

import "sync"

// ErrorStore is the dedicated error-state slice for login and registration
// failures. Controllers surface failures here for display instead of throwing
// them past their boundary; views read and clear it.
type ErrorStore struct {
	mu      sync.RWMutex
	message string
	present bool
}

// NewErrorStore creates an empty error slice.
func NewErrorStore() *ErrorStore {
	return &ErrorStore{}
}

// Set records a failure message, replacing any previous one. Backend
// validation errors are forwarded verbatim.
func (e *ErrorStore) Set(message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.message = message
	e.present = true
}

// Clear removes the current failure.
func (e *ErrorStore) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.message = ""
	e.present = false
}

// Current returns the failure message and whether one is present.
func (e *ErrorStore) Current() (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.message, e.present
}
