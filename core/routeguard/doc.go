// Package routeguard decides whether a requested view renders or redirects,
// given the current credential store contents and a fresh server-side
// capability check.
//
// The dual check exists because local tokens can be stale: a UID in the
// store proves nothing once the backend has revoked the session. Protected
// views therefore require both the local identifier and a probe of a
// protected endpoint that did not return not-found/unauthorized.
package routeguard
