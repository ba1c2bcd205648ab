package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/shopkit/pkg/logger"
)

// Controller drives the checkout state machine for exactly one mounted
// payment view. It is never shared across concurrent checkout attempts;
// mount a new Controller per view instance and Close it on unmount.
type Controller struct {
	mu sync.Mutex

	id      uuid.UUID
	cfg     Config
	intents IntentCreator
	widget  Widget
	email   func() string
	log     *slog.Logger

	status       Status
	clientSecret string
	cardComplete bool
	cardholder   string
	errMsg       string

	// gen invalidates in-flight effects: a response whose generation no
	// longer matches (the view unmounted meanwhile) is discarded, never
	// applied.
	gen    uint64
	closed bool
}

// Option configures the Controller.
type Option func(*Controller)

// WithConfig replaces the default checkout configuration.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithLogger sets a structured logger. Default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithReceiptEmail sets the source for the confirmation receipt email,
// typically the session controller's current user.
func WithReceiptEmail(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.email = fn
		}
	}
}

// New creates a checkout controller for one payment view mount.
func New(intents IntentCreator, widget Widget, opts ...Option) (*Controller, error) {
	if intents == nil {
		return nil, errors.New("checkout: intent creator is required")
	}
	if widget == nil {
		return nil, errors.New("checkout: payment widget is required")
	}

	c := &Controller{
		id:      uuid.New(),
		cfg:     DefaultConfig(),
		intents: intents,
		widget:  widget,
		email:   func() string { return "" },
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		status:  StatusIdle,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Init requests a payment intent for the given items and stores its client
// secret. At most one fetch is in flight: duplicate calls while loading, or
// after a secret is already held, are suppressed rather than queued. A fetch
// failure is a visible Failed state and retryable by calling Init again.
func (c *Controller) Init(ctx context.Context, items []CartItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.status == StatusLoading || c.clientSecret != "" {
		c.mu.Unlock()
		return nil
	}
	c.status = StatusLoading
	c.errMsg = ""
	gen := c.gen
	c.mu.Unlock()

	if !c.cfg.ForwardCart {
		items = items[:1]
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.IntentTimeout)
	defer cancel()

	secret, err := c.intents.PaymentIntent(ctx, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return nil
	}

	if err != nil {
		c.status = StatusFailed
		c.errMsg = ErrSecretFetch.Error()
		c.log.Warn("client secret fetch failed",
			logger.Component("checkout"), logger.Error(err), slog.String("session_id", c.id.String()))
		return errors.Join(ErrSecretFetch, err)
	}

	c.clientSecret = secret
	if c.cardComplete {
		c.status = StatusReady
	} else {
		c.status = StatusAwaitingInput
	}
	c.log.Info("payment intent created",
		logger.Component("checkout"), logger.Status(c.status), slog.String("session_id", c.id.String()))
	return nil
}

// CardChange applies the widget's live validation. Purely local: no network
// I/O, and the processing/succeeded flags are never altered here. A Failed
// state returns to Ready once the corrected input is complete, enabling
// retry without re-mounting or re-fetching the secret.
func (c *Controller) CardChange(ev InputEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.cardComplete = ev.Complete
	c.errMsg = ev.ErrorMessage

	switch c.status {
	case StatusAwaitingInput, StatusReady, StatusFailed:
		if c.clientSecret == "" {
			// Secret fetch failed earlier; input alone cannot leave Failed.
			return
		}
		if ev.Complete && ev.ErrorMessage == "" {
			c.status = StatusReady
		} else {
			c.status = StatusAwaitingInput
		}
	}
}

// SetCardholder records the cardholder name from the form for billing
// metadata.
func (c *Controller) SetCardholder(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cardholder = name
}

// Submit confirms the payment. No-op while processing, with incomplete card
// input, or after success: at most one confirmation is ever in flight per
// session. Success is terminal; failure keeps the same client secret and is
// recoverable by resubmission.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.status == StatusProcessing || c.status == StatusSucceeded || !c.cardComplete || c.clientSecret == "" {
		c.mu.Unlock()
		return nil
	}
	c.status = StatusProcessing
	c.errMsg = ""
	gen := c.gen
	secret := c.clientSecret
	billing := Billing{Email: c.email(), Name: c.cardholder}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConfirmTimeout)
	defer cancel()

	method, err := c.widget.CollectPaymentMethod()
	if err == nil {
		err = c.widget.Confirm(ctx, secret, method, billing)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return nil
	}

	if err != nil {
		c.status = StatusFailed
		c.errMsg = err.Error()
		var cerr *ConfirmationError
		if errors.As(err, &cerr) {
			c.errMsg = cerr.Message
		}
		c.log.Warn("payment confirmation failed",
			logger.Component("checkout"), logger.Error(err), slog.String("session_id", c.id.String()))
		return nil
	}

	c.status = StatusSucceeded
	c.errMsg = ""
	c.log.Info("payment succeeded",
		logger.Component("checkout"), slog.String("session_id", c.id.String()))
	return nil
}

// Close marks the view unmounted. Pending effects resolve into the void:
// any response arriving afterwards is discarded. Idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
}

// Session returns the current state snapshot.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Session{
		Status:       c.status,
		ClientSecret: c.clientSecret,
		CardComplete: c.cardComplete,
		Processing:   c.status == StatusProcessing,
		Succeeded:    c.status == StatusSucceeded,
		Err:          c.errMsg,
	}
}
