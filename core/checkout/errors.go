package checkout

import "errors"

var (
	// ErrSecretFetch indicates the backend failed to issue a client secret.
	// The failure is visible in the session state and retryable via Init.
	ErrSecretFetch = errors.New("failed to obtain payment client secret")

	// ErrNoItems is returned when Init is called with an empty cart.
	ErrNoItems = errors.New("checkout requires at least one cart item")

	// ErrClosed is returned when an operation is attempted after the
	// checkout view unmounted.
	ErrClosed = errors.New("checkout session is closed")
)

// ConfirmationError is a card decline or processor-side failure. It always
// carries the widget's human-readable message and is always recoverable by
// resubmission.
type ConfirmationError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfirmationError) Error() string {
	return e.Message
}
