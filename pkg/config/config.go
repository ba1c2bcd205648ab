package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseFailed is returned when environment variables cannot be mapped onto
// the target configuration struct.
var ErrParseFailed = errors.New("failed to parse environment configuration")

// Load populates a configuration struct of type T from the process
// environment. Optional dotenv files are loaded first; missing files are
// ignored so the same call works in development and production.
func Load[T any](files ...string) (T, error) {
	var cfg T

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("%w: dotenv %s: %w", ErrParseFailed, f, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParseFailed, err)
	}

	return cfg, nil
}

// MustLoad is like Load but panics on failure. Follows the fail-fast pattern
// for initialization code where a broken configuration must not start.
func MustLoad[T any](files ...string) T {
	cfg, err := Load[T](files...)
	if err != nil {
		panic(err)
	}
	return cfg
}
