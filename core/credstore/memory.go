package credstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Entries live for the process lifetime and
// are immediately visible to subsequent reads, matching the single-origin
// visibility contract.
type Memory struct {
	mu       sync.RWMutex
	defaults Options
	entries  map[string]entry
}

// NewMemory creates an empty in-memory store. Default scope options apply to
// every Set unless overridden per call.
func NewMemory(opts ...Option) *Memory {
	return &Memory{
		defaults: applyOptions(Options{}, opts),
		entries:  make(map[string]entry),
	}
}

// Set stores a value under name.
func (m *Memory) Set(_ context.Context, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[name] = entry{Value: value, Options: applyOptions(m.defaults, opts)}
	return nil
}

// Get returns the stored value or ErrNotFound.
func (m *Memory) Get(_ context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[name]
	if !ok {
		return "", ErrNotFound
	}
	return e.Value, nil
}

// Clear removes the named entry.
func (m *Memory) Clear(_ context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, name)
	return nil
}
