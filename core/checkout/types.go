package checkout

// Status tracks the checkout state machine for one mounted payment view.
type Status string

const (
	// StatusIdle is the state before the intent fetch is started.
	StatusIdle Status = "idle"
	// StatusLoading means the client secret fetch is in flight.
	StatusLoading Status = "loading"
	// StatusAwaitingInput means the secret is held but card input is not
	// yet complete.
	StatusAwaitingInput Status = "awaiting_input"
	// StatusReady means the card input is valid and submission is allowed.
	StatusReady Status = "ready"
	// StatusProcessing means a confirmation is in flight.
	StatusProcessing Status = "processing"
	// StatusSucceeded is terminal for this checkout session.
	StatusSucceeded Status = "succeeded"
	// StatusFailed holds a visible error; confirmation failures return to
	// Ready on corrected input, secret-fetch failures allow an Init retry.
	StatusFailed Status = "failed"
)

// CartItem identifies one purchasable item forwarded to intent creation.
type CartItem struct {
	ID string `json:"id"`
}

// Billing is the metadata attached to a confirmation: receipt email from the
// session, cardholder name from the form.
type Billing struct {
	Email string
	Name  string
}

// InputEvent is the payment widget's live validation callback payload.
type InputEvent struct {
	// Complete reports whether the card input is valid and submittable.
	Complete bool
	// ErrorMessage carries the widget's human-readable validation error,
	// empty when the input is acceptable.
	ErrorMessage string
}

// Session is a read-only snapshot of the checkout state. Processing and
// Succeeded are mutually exclusive with Err.
type Session struct {
	Status       Status
	ClientSecret string
	CardComplete bool
	Processing   bool
	Succeeded    bool
	Err          string
}
