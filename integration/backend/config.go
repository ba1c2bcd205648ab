package backend

import "time"

// Config provides environment-based configuration for the storefront REST
// client.
type Config struct {
	// BaseURL is the storefront backend root, e.g. http://localhost:4000.
	BaseURL string `env:"BACKEND_URL,required"`

	// RequestTimeout bounds every request issued by the client.
	RequestTimeout time.Duration `env:"BACKEND_REQUEST_TIMEOUT" envDefault:"15s"`
}

// DefaultConfig returns a Config pointing at the local development backend.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:4000",
		RequestTimeout: 15 * time.Second,
	}
}
