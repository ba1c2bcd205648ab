package credstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/core/credstore"
)

func TestMemory_BasicOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		s := credstore.NewMemory()
		require.NoError(t, s.Set(ctx, "UID", "u1"))

		v, err := s.Get(ctx, "UID")
		require.NoError(t, err)
		assert.Equal(t, "u1", v)
	})

	t.Run("get absent returns ErrNotFound", func(t *testing.T) {
		s := credstore.NewMemory()
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("overwrite replaces value", func(t *testing.T) {
		s := credstore.NewMemory()
		require.NoError(t, s.Set(ctx, "SID", "s1"))
		require.NoError(t, s.Set(ctx, "SID", "s2"))

		v, err := s.Get(ctx, "SID")
		require.NoError(t, err)
		assert.Equal(t, "s2", v)
	})

	t.Run("clear removes entry", func(t *testing.T) {
		s := credstore.NewMemory()
		require.NoError(t, s.Set(ctx, "CID", "c1"))
		require.NoError(t, s.Clear(ctx, "CID"))

		_, err := s.Get(ctx, "CID")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("clear absent is a no-op", func(t *testing.T) {
		s := credstore.NewMemory()
		assert.NoError(t, s.Clear(ctx, "never-set"))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		s := credstore.NewMemory()
		assert.ErrorIs(t, s.Set(ctx, "", "v"), credstore.ErrEmptyName)
		_, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, credstore.ErrEmptyName)
		assert.ErrorIs(t, s.Clear(ctx, ""), credstore.ErrEmptyName)
	})

	t.Run("values are byte-transparent", func(t *testing.T) {
		s := credstore.NewMemory()
		raw := "\x00not-a-token\n{}"
		require.NoError(t, s.Set(ctx, "AID", raw))

		v, err := s.Get(ctx, "AID")
		require.NoError(t, err)
		assert.Equal(t, raw, v)
	})
}

func TestFile_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "creds.json")
	cfg := credstore.Config{Path: path}

	s, err := credstore.NewFile(cfg)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "UID", "u1", credstore.WithCrossSite(true)))
	require.NoError(t, s.Set(ctx, "jwtToken", "ey.abc.def", credstore.WithMaxAge(3600)))

	// Reopen the jar as a fresh process would.
	reopened, err := credstore.NewFile(cfg)
	require.NoError(t, err)

	v, err := reopened.Get(ctx, "UID")
	require.NoError(t, err)
	assert.Equal(t, "u1", v)

	v, err = reopened.Get(ctx, "jwtToken")
	require.NoError(t, err)
	assert.Equal(t, "ey.abc.def", v)
}

func TestFile_ClearPersists(t *testing.T) {
	ctx := context.Background()
	cfg := credstore.Config{Path: filepath.Join(t.TempDir(), "creds.json")}

	s, err := credstore.NewFile(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "SID", "s1"))
	require.NoError(t, s.Clear(ctx, "SID"))

	reopened, err := credstore.NewFile(cfg)
	require.NoError(t, err)
	_, err = reopened.Get(ctx, "SID")
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestFile_RequiresPath(t *testing.T) {
	_, err := credstore.NewFile(credstore.Config{})
	assert.ErrorIs(t, err, credstore.ErrPersistFailed)
}
