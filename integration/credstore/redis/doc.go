// Package redis provides a Redis-backed credstore.Store for deployments
// where session identifiers are shared across processes.
//
// Entries written with a MaxAge scope option expire through Redis TTL; all
// other entries live until cleared. Connect wraps client creation with URL
// validation and a connectivity ping.
//
//	client, err := redis.Connect(ctx, cfg)
//	store := redis.New(client, cfg)
package redis
