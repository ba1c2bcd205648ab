// Package credstore provides durable, synchronous key/value persistence for
// session identifiers, modeled after a browser cookie jar.
//
// The store is byte-transparent: values are opaque strings, and scope options
// (Secure, CrossSite, Path, MaxAge) are recorded with each entry but never
// validated against the value. Writes are immediately visible to subsequent
// reads.
//
// # Usage
//
//	store := credstore.NewMemory()
//	err := store.Set(ctx, "UID", token,
//		credstore.WithSecure(false),
//		credstore.WithCrossSite(true),
//	)
//
//	value, err := store.Get(ctx, "UID")
//	if errors.Is(err, credstore.ErrNotFound) {
//		// absent
//	}
//
// Two implementations ship with the package: Memory (process lifetime) and
// File (JSON jar with atomic writes, survives restarts). A Redis-backed
// implementation lives in integration/credstore/redis.
package credstore
