// Package stripe implements the checkout payment widget on top of the
// Stripe API.
//
// The widget holds card input locally, tokenizes it into a payment method,
// and confirms the payment intent identified by the client secret issued by
// the storefront backend. Card data never touches the backend.
//
// Usage:
//
//	widget, err := stripe.New(stripe.Config{SecretKey: key})
//	if err != nil {
//		log.Fatal(err)
//	}
//	widget.SetCard(stripe.Card{
//		Number:   "4242424242424242",
//		ExpMonth: "12",
//		ExpYear:  "2030",
//		CVC:      "123",
//	})
//
//	ctrl := checkout.New(intents, widget, checkout.DefaultConfig)
package stripe
