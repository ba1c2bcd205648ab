package routeguard

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/shopkit/core/credstore"
	"github.com/dmitrymomot/shopkit/core/session"
	"github.com/dmitrymomot/shopkit/pkg/logger"
)

// ErrSessionMismatch signals that a protected resource rejected the locally
// held credentials: the local tokens are stale (revoked server-side). The
// guard redirects on it; it is never thrown past the guard boundary.
var ErrSessionMismatch = errors.New("protected resource rejected local session credentials")

// Capability is the access requirement a view declares.
type Capability string

const (
	// CapabilityAnonymous marks guest-only views (login, registration):
	// an authenticated visitor is redirected away.
	CapabilityAnonymous Capability = "anonymous"
	// CapabilityAuthenticated marks protected views.
	CapabilityAuthenticated Capability = "authenticated"
)

// SessionView selects which of the two rendering variants applies. An
// explicit enum instead of boolean sentinels scattered across components.
type SessionView string

const (
	ViewAnonymous     SessionView = "anonymous"
	ViewAuthenticated SessionView = "authenticated"
)

// Decision is the guard's verdict for a requested view.
type Decision struct {
	// Allow reports whether the requested view may render.
	Allow bool
	// Redirect is the fallback route when Allow is false.
	Redirect string
	// View is the rendering variant matching the current session.
	View SessionView
}

// Prober performs the fresh server-side capability check backing protected
// views. Implemented by integration/backend against the orders endpoint;
// a stale or missing delegated-access identifier yields ErrSessionMismatch.
type Prober interface {
	CheckAccess(ctx context.Context, aid string) error
}

// Guard decides whether a view renders or redirects, from the credential
// store contents plus a fresh server confirmation. Local token presence
// alone is never trusted for protected content: local tokens can be revoked
// server-side without the client noticing.
type Guard struct {
	creds    credstore.Store
	prober   Prober
	fallback string
	log      *slog.Logger
}

// Option configures the Guard.
type Option func(*Guard)

// WithFallback sets the redirect target for denied views. Default "/".
func WithFallback(route string) Option {
	return func(g *Guard) {
		if route != "" {
			g.fallback = route
		}
	}
}

// WithLogger sets a structured logger. Default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a route guard.
func New(creds credstore.Store, prober Prober, opts ...Option) (*Guard, error) {
	if creds == nil {
		return nil, errors.New("routeguard: credential store is required")
	}
	if prober == nil {
		return nil, errors.New("routeguard: prober is required")
	}

	g := &Guard{
		creds:    creds,
		prober:   prober,
		fallback: "/",
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Decide evaluates a capability requirement against the current session.
//
// Authenticated views require a non-empty UID locally AND a fresh probe that
// did not come back not-found/unauthorized. Anonymous views are guest-only
// and redirect visitors that already hold a session.
func (g *Guard) Decide(ctx context.Context, capability Capability) Decision {
	uid := g.storedValue(ctx, session.TokenUID)
	view := ViewAnonymous
	if uid != "" {
		view = ViewAuthenticated
	}

	switch capability {
	case CapabilityAnonymous:
		if uid != "" {
			return Decision{Allow: false, Redirect: g.fallback, View: view}
		}
		return Decision{Allow: true, View: view}

	case CapabilityAuthenticated:
		if uid == "" {
			return Decision{Allow: false, Redirect: g.fallback, View: view}
		}

		aid := g.storedValue(ctx, session.TokenAID)
		if err := g.prober.CheckAccess(ctx, aid); err != nil {
			if errors.Is(err, ErrSessionMismatch) {
				g.log.Info("stale local session, redirecting", logger.Component("routeguard"))
			} else {
				g.log.Warn("capability probe failed", logger.Component("routeguard"), logger.Error(err))
			}
			// Fail closed: an unconfirmed session never renders protected
			// content.
			return Decision{Allow: false, Redirect: g.fallback, View: view}
		}

		return Decision{Allow: true, View: view}

	default:
		return Decision{Allow: false, Redirect: g.fallback, View: view}
	}
}

func (g *Guard) storedValue(ctx context.Context, name string) string {
	v, err := g.creds.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, credstore.ErrNotFound) {
			g.log.Warn("credential read failed", logger.Component("routeguard"), logger.Error(err))
		}
		return ""
	}
	return v
}
