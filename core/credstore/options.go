package credstore

// Options configures the scope policy recorded with a stored credential.
// The zero value matches the browser-observed defaults: not secure, same-site,
// root path, session-lifetime.
type Options struct {
	// Path scopes the credential to a URL path prefix.
	Path string `json:"path,omitempty"`
	// MaxAge is the credential lifetime in seconds. Zero means
	// session-lifetime; backends with TTL support may evict after MaxAge.
	MaxAge int `json:"max_age,omitempty"`
	// Secure restricts the credential to secure transport.
	Secure bool `json:"secure,omitempty"`
	// CrossSite allows the credential to be sent on cross-site requests
	// (the SameSite=None analog).
	CrossSite bool `json:"cross_site,omitempty"`
}

// Option is a functional option for configuring credential scope.
type Option func(*Options)

// WithPath sets the credential path scope.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithMaxAge sets the credential lifetime in seconds.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithSecure restricts the credential to secure transport.
func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithCrossSite allows the credential on cross-site requests.
func WithCrossSite(crossSite bool) Option {
	return func(o *Options) {
		o.CrossSite = crossSite
	}
}

// applyOptions copies base options and applies modifications, preventing
// accidental mutation of shared defaults.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
