package session

import "context"

// Credentials carries the login form input.
type Credentials struct {
	Email    string
	Password string
}

// RegisterParams carries the registration form input.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// IssuedTokens holds the identifier values returned by the cookie-multiplex
// login endpoint. Absent identifiers are empty strings.
type IssuedTokens struct {
	UID string
	CID string
	SID string
	AID string
}

// TokenGrant is the bearer-token login response.
type TokenGrant struct {
	Token   string
	Message string
}

// API is the backend boundary the controller talks to. The concrete REST
// client lives in integration/backend.
type API interface {
	// Login authenticates against the cookie-multiplex endpoint and returns
	// the issued identifier set.
	Login(ctx context.Context, creds Credentials) (IssuedTokens, error)

	// LoginToken authenticates against the bearer-token endpoint.
	LoginToken(ctx context.Context, creds Credentials) (TokenGrant, error)

	// Register creates a new account. Validation failures are returned as
	// *ValidationError with the backend message verbatim.
	Register(ctx context.Context, params RegisterParams) error
}

// ValidationError carries a backend validation message verbatim so views can
// display it unchanged.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}
