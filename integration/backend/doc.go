// Package backend is the REST client for the storefront API. It is the
// single network boundary behind the core seams: it implements session.API
// for the session controller, checkout.IntentCreator for the payment flow,
// and routeguard.Prober for protected-view checks, plus the unauthenticated
// collection listings.
//
//	cfg := backend.DefaultConfig()
//	client, err := backend.New(cfg)
package backend
