package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a JSON file, surviving process restarts the
// way a browser cookie jar survives page reloads. Every mutation is written
// through atomically (temp file + rename) so a crash never leaves a
// half-written jar.
type File struct {
	mu       sync.Mutex
	path     string
	defaults Options
	entries  map[string]entry
}

// NewFile opens or creates a file-backed store at cfg.Path.
func NewFile(cfg Config, opts ...Option) (*File, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: file path is required", ErrPersistFailed)
	}

	f := &File{
		path:     cfg.Path,
		defaults: applyOptions(Options{}, opts),
		entries:  make(map[string]entry),
	}

	if err := f.load(); err != nil {
		return nil, err
	}

	return f, nil
}

// Set stores a value under name and persists the jar.
func (f *File) Set(_ context.Context, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[name] = entry{Value: value, Options: applyOptions(f.defaults, opts)}
	return f.persist()
}

// Get returns the stored value or ErrNotFound.
func (f *File) Get(_ context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[name]
	if !ok {
		return "", ErrNotFound
	}
	return e.Value, nil
}

// Clear removes the named entry and persists the jar.
func (f *File) Clear(_ context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[name]; !ok {
		return nil
	}
	delete(f.entries, name)
	return f.persist()
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Join(ErrPersistFailed, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &f.entries); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}
	return nil
}

// persist writes the jar atomically. Caller must hold f.mu.
func (f *File) persist() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return errors.Join(ErrPersistFailed, err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".credstore-*")
	if err != nil {
		return errors.Join(ErrPersistFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrPersistFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrPersistFailed, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrPersistFailed, err)
	}
	return nil
}
