package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/pkg/config"
)

type testConfig struct {
	BackendURL string        `env:"TEST_BACKEND_URL" envDefault:"http://localhost:4000"`
	Timeout    time.Duration `env:"TEST_TIMEOUT" envDefault:"15s"`
	Required   string        `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and env override", func(t *testing.T) {
		t.Setenv("TEST_REQUIRED_VALUE", "present")
		t.Setenv("TEST_TIMEOUT", "30s")

		cfg, err := config.Load[testConfig]()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4000", cfg.BackendURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "present", cfg.Required)
	})

	t.Run("missing required variable", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_VALUE")

		_, err := config.Load[testConfig]()
		require.ErrorIs(t, err, config.ErrParseFailed)
	})

	t.Run("dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("TEST_REQUIRED_VALUE=from-file\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("TEST_REQUIRED_VALUE") })

		cfg, err := config.Load[testConfig](envFile)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Required)
	})

	t.Run("missing dotenv file ignored", func(t *testing.T) {
		t.Setenv("TEST_REQUIRED_VALUE", "present")

		_, err := config.Load[testConfig](filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_VALUE")

		assert.Panics(t, func() {
			config.MustLoad[testConfig]()
		})
	})
}
