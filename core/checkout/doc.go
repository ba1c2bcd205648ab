// Package checkout drives the asynchronous card-payment confirmation flow as
// an explicit state machine:
//
//	Idle → Loading → AwaitingInput → Ready → Processing → Succeeded | Failed
//
// A Failed confirmation returns to Ready on corrected input, reusing the same
// client secret across retries. A failed secret fetch is a visible Failed
// state, retryable via Init. Succeeded is terminal for the session.
//
// The third-party payment element sits behind the Widget capability
// interface (CollectPaymentMethod + Confirm), keeping the state machine
// independent of any concrete widget. A Stripe-backed Widget lives in
// integration/payment/stripe.
//
// One Controller belongs to exactly one mounted payment view. Close it on
// unmount: late responses are discarded, never applied to a destroyed view.
package checkout
