package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates required client configuration is missing
	// or malformed.
	ErrInvalidConfig = errors.New("invalid backend client configuration")

	// ErrRequestFailed indicates a network-level failure before any HTTP
	// status was received.
	ErrRequestFailed = errors.New("backend request failed")

	// ErrInvalidCredentials indicates the login endpoint rejected the
	// supplied credentials.
	ErrInvalidCredentials = errors.New("backend rejected credentials")

	// ErrNoClientSecret indicates the payment endpoint answered success
	// without issuing a client secret.
	ErrNoClientSecret = errors.New("payment response carried no client secret")
)

// StatusError indicates an unexpected HTTP status from the backend. The body
// is preserved because validation endpoints return display-ready messages.
type StatusError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Body)
}
