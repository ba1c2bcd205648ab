// Package identity decodes backend-issued bearer tokens into a typed claim
// set.
//
// Decode mirrors the client-side decode path: no signature verification,
// because the client never holds the signing key and the backend re-validates
// on every protected call. Parse adds HMAC verification for contexts where
// the secret is available.
package identity
