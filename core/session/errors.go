package session

import "errors"

var (
	// ErrAuthFailed is the umbrella for login failures: invalid credentials,
	// network failure, or a backend rejection.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrMalformedToken is returned when a bearer token cannot be decoded
	// into identity claims. Surfaced, never swallowed.
	ErrMalformedToken = errors.New("malformed bearer token")

	// ErrIncompleteGrant is returned when the login endpoint answered with
	// success but did not issue the full UID/CID/SID set.
	ErrIncompleteGrant = errors.New("login response missing core session identifiers")
)
