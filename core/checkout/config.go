package checkout

import "time"

// Config holds checkout controller configuration.
type Config struct {
	// ForwardCart controls whether the full cart is forwarded to intent
	// creation. The observed client hard-codes a single item; whether real
	// cart contents should be sent is an unresolved product question, so it
	// is a configuration point rather than a guess. False sends only the
	// first item.
	ForwardCart bool `env:"CHECKOUT_FORWARD_CART" envDefault:"true"`

	// IntentTimeout bounds the client secret fetch.
	IntentTimeout time.Duration `env:"CHECKOUT_INTENT_TIMEOUT" envDefault:"15s"`

	// ConfirmTimeout bounds the widget confirmation call.
	ConfirmTimeout time.Duration `env:"CHECKOUT_CONFIRM_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns the default checkout configuration.
func DefaultConfig() Config {
	return Config{
		ForwardCart:    true,
		IntentTimeout:  15 * time.Second,
		ConfirmTimeout: 30 * time.Second,
	}
}
