package checkout

import "context"

// PaymentMethod is an opaque token referencing card data collected by the
// widget. Raw card details never pass through this application.
type PaymentMethod string

// Widget is the capability boundary to the embedded third-party payment
// element. The state machine depends only on this interface, never on a
// concrete widget implementation.
type Widget interface {
	// CollectPaymentMethod tokenizes the card input currently held by the
	// widget. Fails with an input error when the card data is unusable.
	CollectPaymentMethod() (PaymentMethod, error)

	// Confirm submits the payment method against the intent authorized by
	// clientSecret. Declines and processor failures are returned as
	// *ConfirmationError carrying the widget's human-readable message.
	Confirm(ctx context.Context, clientSecret string, method PaymentMethod, billing Billing) error
}

// IntentCreator requests a payment intent for the given items and returns
// its client secret. Implemented by integration/backend.
type IntentCreator interface {
	PaymentIntent(ctx context.Context, items []CartItem) (string, error)
}
