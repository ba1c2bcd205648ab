package stripe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
	"github.com/stripe/stripe-go/v72/paymentmethod"

	"github.com/dmitrymomot/shopkit/core/checkout"
)

var (
	// ErrInvalidConfig indicates required Stripe configuration is missing.
	ErrInvalidConfig = errors.New("invalid stripe configuration")

	// ErrNoCard is returned by CollectPaymentMethod when no card input is
	// held.
	ErrNoCard = errors.New("no card input collected")

	// ErrBadClientSecret indicates the client secret does not reference a
	// payment intent.
	ErrBadClientSecret = errors.New("client secret does not reference a payment intent")
)

// Config provides environment-based configuration for the Stripe widget.
type Config struct {
	SecretKey string `env:"STRIPE_SECRET_KEY,required"`
}

// Card is the card input held by the widget. Expiry fields are strings, as
// Stripe's card params expect.
type Card struct {
	Number   string
	ExpMonth string
	ExpYear  string
	CVC      string
}

// Complete reports whether every card field is filled in.
func (c Card) Complete() bool {
	return c.Number != "" && c.ExpMonth != "" && c.ExpYear != "" && c.CVC != ""
}

// InputEvent translates the current card state into the checkout
// controller's live-validation payload.
func (c Card) InputEvent() checkout.InputEvent {
	if !c.Complete() {
		return checkout.InputEvent{ErrorMessage: "card details are incomplete"}
	}
	return checkout.InputEvent{Complete: true}
}

// Widget is a Stripe-backed checkout.Widget: card input is tokenized into a
// payment method and confirmed against the intent referenced by the client
// secret. Raw card data goes to Stripe only, never to the storefront
// backend.
type Widget struct {
	mu      sync.Mutex
	card    Card
	hasCard bool
}

// compile-time interface check
var _ checkout.Widget = (*Widget)(nil)

// New creates a Stripe widget and installs the account key.
func New(cfg Config) (*Widget, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: SecretKey is required", ErrInvalidConfig)
	}
	stripe.Key = cfg.SecretKey
	return &Widget{}, nil
}

// SetCard replaces the held card input, the analog of typing into the
// embedded card element.
func (w *Widget) SetCard(card Card) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.card = card
	w.hasCard = true
}

// CollectPaymentMethod tokenizes the held card input.
func (w *Widget) CollectPaymentMethod() (checkout.PaymentMethod, error) {
	w.mu.Lock()
	card := w.card
	hasCard := w.hasCard
	w.mu.Unlock()

	if !hasCard || !card.Complete() {
		return "", ErrNoCard
	}

	pm, err := paymentmethod.New(&stripe.PaymentMethodParams{
		Type: stripe.String("card"),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.String(card.ExpMonth),
			ExpYear:  stripe.String(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
	})
	if err != nil {
		return "", asConfirmationError(err)
	}

	return checkout.PaymentMethod(pm.ID), nil
}

// Confirm submits the payment method against the intent authorized by the
// client secret. The billing metadata, cardholder name included, is attached
// to the payment method first. Declines come back as
// *checkout.ConfirmationError carrying Stripe's human-readable message.
func (w *Widget) Confirm(ctx context.Context, clientSecret string, method checkout.PaymentMethod, billing Billing) error {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return err
	}

	if bp := billingParams(billing); bp != nil {
		update := &stripe.PaymentMethodParams{
			Params:         stripe.Params{Context: ctx},
			BillingDetails: bp,
		}
		if _, err := paymentmethod.Update(string(method), update); err != nil {
			return asConfirmationError(err)
		}
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(string(method)),
	}
	if billing.Email != "" {
		params.ReceiptEmail = stripe.String(billing.Email)
	}

	if _, err := paymentintent.Confirm(intentID, params); err != nil {
		return asConfirmationError(err)
	}
	return nil
}

// billingParams maps the checkout billing metadata onto Stripe billing
// details. Nil when there is nothing to attach.
func billingParams(b Billing) *stripe.BillingDetailsParams {
	if b.Name == "" && b.Email == "" {
		return nil
	}
	p := &stripe.BillingDetailsParams{}
	if b.Name != "" {
		p.Name = stripe.String(b.Name)
	}
	if b.Email != "" {
		p.Email = stripe.String(b.Email)
	}
	return p
}

// Billing aliases the checkout billing metadata.
type Billing = checkout.Billing

// intentIDFromSecret extracts the payment intent ID from a client secret of
// the form "pi_xxx_secret_yyy".
func intentIDFromSecret(secret string) (string, error) {
	id, _, found := strings.Cut(secret, "_secret")
	if !found || !strings.HasPrefix(id, "pi_") {
		return "", ErrBadClientSecret
	}
	return id, nil
}

// asConfirmationError maps Stripe API failures onto the checkout error
// taxonomy, preserving Stripe's display message.
func asConfirmationError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return &checkout.ConfirmationError{Message: se.Msg}
	}
	return &checkout.ConfirmationError{Message: err.Error()}
}
