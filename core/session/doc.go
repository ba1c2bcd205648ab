// Package session orchestrates the client-side session lifecycle: login and
// logout against the storefront backend, credential persistence, and auth
// state dispatches.
//
// Two session strategies coexist, mirroring the two observed backend
// variants:
//
//   - Cookie-multiplex (Login): the backend issues up to four correlated
//     identifiers (UID, CID, SID, optionally AID) as response headers, each
//     persisted as its own credential store entry.
//   - Bearer-token (LoginWithToken): the backend returns a single decodable
//     bearer token persisted under one durable entry.
//
// The Tokens type makes the multiplex invariant explicit: UID, CID and SID
// are all-or-nothing, AID is independent and never proof of authentication.
// Logout clears all four unconditionally. Restore rebuilds the in-memory auth
// state from the credential store after a process restart; that
// reconstruction is this controller's responsibility, not an implicit side
// effect elsewhere.
package session
