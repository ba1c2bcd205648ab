package credstore

import "context"

// Store is a byte-transparent named string store for session identifiers.
// Values are persisted exactly as written; no shape validation is performed.
// Implementations must be safe for concurrent use.
type Store interface {
	// Set writes a named value with the given scope options, replacing any
	// previous entry of the same name.
	Set(ctx context.Context, name, value string, opts ...Option) error

	// Get returns the stored value, or ErrNotFound when the name is absent.
	Get(ctx context.Context, name string) (string, error)

	// Clear removes the named entry. Clearing an absent entry is a no-op.
	Clear(ctx context.Context, name string) error
}

// entry pairs a stored value with the scope options it was written under.
// Options are recorded, not enforced: the store is policy-transparent.
type entry struct {
	Value   string  `json:"value"`
	Options Options `json:"options"`
}
