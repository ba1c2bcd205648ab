package session

import "time"

// Config holds session controller configuration.
type Config struct {
	// BearerEntry is the credential store entry holding the raw bearer token
	// for the token-based login strategy.
	BearerEntry string `env:"SESSION_BEARER_ENTRY" envDefault:"jwtToken"`

	// RequestTimeout bounds every login and registration request so a hung
	// backend cannot leave the loading flag set forever.
	RequestTimeout time.Duration `env:"SESSION_REQUEST_TIMEOUT" envDefault:"15s"`

	// CookieSecure marks stored session identifiers as secure-transport-only.
	// The observed deployment runs with false; revisit before production.
	CookieSecure bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`

	// CookieCrossSite allows stored session identifiers on cross-site
	// requests (SameSite=None analog), matching the observed scope.
	CookieCrossSite bool `env:"SESSION_COOKIE_CROSS_SITE" envDefault:"true"`
}

// DefaultConfig returns a Config matching the observed client behavior.
func DefaultConfig() Config {
	return Config{
		BearerEntry:     "jwtToken",
		RequestTimeout:  15 * time.Second,
		CookieSecure:    false,
		CookieCrossSite: true,
	}
}
