// Package logger provides slog attribute helpers shared across shopkit packages.
//
// Helpers return an empty slog.Attr for zero values, so call sites never need
// nil checks:
//
//	log.Info("login failed", logger.Error(err), logger.UserID(uid))
package logger
