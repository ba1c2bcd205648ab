package session

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/shopkit/core/authstate"
	"github.com/dmitrymomot/shopkit/core/credstore"
	"github.com/dmitrymomot/shopkit/pkg/identity"
	"github.com/dmitrymomot/shopkit/pkg/logger"
)

// Controller orchestrates the session lifecycle: login and logout against the
// backend, credential store writes, and auth state dispatches. It owns both
// session strategies, cookie-multiplex (Login) and bearer-token
// (LoginWithToken), because neither variant supersedes the other.
type Controller struct {
	api   API
	creds credstore.Store
	state *authstate.Store
	errs  *authstate.ErrorStore
	cfg   Config
	log   *slog.Logger
}

// Option configures the Controller.
type Option func(*Controller)

// WithConfig replaces the default controller configuration.
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

// New creates a session controller. All dependencies are required.
func New(api API, creds credstore.Store, state *authstate.Store, errs *authstate.ErrorStore, opts ...Option) (*Controller, error) {
	if api == nil {
		return nil, errors.New("session: backend API is required")
	}
	if creds == nil {
		return nil, errors.New("session: credential store is required")
	}
	if state == nil {
		return nil, errors.New("session: auth state store is required")
	}
	if errs == nil {
		return nil, errors.New("session: error store is required")
	}

	c := &Controller{
		api:   api,
		creds: creds,
		state: state,
		errs:  errs,
		cfg:   DefaultConfig(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Login authenticates through the cookie-multiplex endpoint and persists the
// issued identifier set. On failure no store mutation happens. Idempotent
// under retry: a repeat after success simply re-issues tokens.
//
// A previously stored AID from an earlier session is left untouched when the
// response omits it; a login never implicitly revokes delegated access.
func (c *Controller) Login(ctx context.Context, creds Credentials) error {
	c.errs.Clear()
	c.state.Dispatch(authstate.SetLoading{Loading: true})
	defer c.state.Dispatch(authstate.SetLoading{Loading: false})

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	issued, err := c.api.Login(ctx, creds)
	if err != nil {
		c.log.Warn("login failed", logger.Component("session"), logger.Error(err))
		c.errs.Set(err.Error())
		return errors.Join(ErrAuthFailed, err)
	}

	grant := Tokens{UID: issued.UID, CID: issued.CID, SID: issued.SID, AID: issued.AID}
	if !grant.Complete() {
		// Writing a partial set would break the all-or-nothing invariant,
		// so an incomplete grant mutates nothing.
		c.errs.Set(ErrIncompleteGrant.Error())
		return errors.Join(ErrAuthFailed, ErrIncompleteGrant)
	}

	// The UID is itself a decodable identity token; authentication is
	// accepted only once its claims decode, and nothing is persisted before
	// that. AID absence never matters here.
	claims, err := identity.Decode(grant.UID)
	if err != nil {
		c.log.Warn("issued UID does not decode", logger.Component("session"), logger.Error(err))
		c.errs.Set(ErrMalformedToken.Error())
		return errors.Join(ErrAuthFailed, ErrMalformedToken, err)
	}

	if err := c.saveTokens(ctx, grant); err != nil {
		// A mid-sequence write failure must not leave a partial core set
		// behind for the route guard to read. The prior AID stays.
		if cerr := clearCoreTokens(ctx, c.creds); cerr != nil {
			c.log.Warn("failed to clear partial token set", logger.Component("session"), logger.Error(cerr))
		}
		c.errs.Set(err.Error())
		return errors.Join(ErrAuthFailed, err)
	}

	c.state.Dispatch(authstate.Login{Claims: claims})
	c.log.Info("login succeeded", logger.Component("session"), logger.UserID(claims.Subject))
	return nil
}

// LoginWithToken authenticates through the bearer-token endpoint, decodes the
// returned token into identity claims, persists the raw token durably, and
// dispatches the login. A malformed token surfaces as an error and persists
// nothing.
func (c *Controller) LoginWithToken(ctx context.Context, creds Credentials) error {
	c.errs.Clear()
	c.state.Dispatch(authstate.SetLoading{Loading: true})
	defer c.state.Dispatch(authstate.SetLoading{Loading: false})

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	grant, err := c.api.LoginToken(ctx, creds)
	if err != nil {
		c.log.Warn("token login failed", logger.Component("session"), logger.Error(err))
		c.errs.Set(err.Error())
		return errors.Join(ErrAuthFailed, err)
	}

	claims, err := identity.Decode(grant.Token)
	if err != nil {
		c.errs.Set(ErrMalformedToken.Error())
		return errors.Join(ErrAuthFailed, ErrMalformedToken, err)
	}

	if err := c.creds.Set(ctx, c.cfg.BearerEntry, grant.Token); err != nil {
		c.errs.Set(err.Error())
		return errors.Join(ErrAuthFailed, err)
	}

	c.state.Dispatch(authstate.Login{Claims: claims})
	c.log.Info("token login succeeded", logger.Component("session"), logger.UserID(claims.Subject))
	return nil
}

// Register creates a new account. Backend validation failures are forwarded
// verbatim into the error slice for display.
func (c *Controller) Register(ctx context.Context, params RegisterParams) error {
	c.errs.Clear()
	c.state.Dispatch(authstate.SetLoading{Loading: true})
	defer c.state.Dispatch(authstate.SetLoading{Loading: false})

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	if err := c.api.Register(ctx, params); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.errs.Set(verr.Message)
		} else {
			c.errs.Set(err.Error())
		}
		return errors.Join(ErrAuthFailed, err)
	}

	return nil
}

// Logout removes the bearer token, clears all four session identifiers (even
// if some were never set), and dispatches the logout. Always succeeds
// locally; calling it unauthenticated is a no-op.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.creds.Clear(ctx, c.cfg.BearerEntry); err != nil {
		c.log.Warn("failed to clear bearer token", logger.Component("session"), logger.Error(err))
	}
	if err := clearTokens(ctx, c.creds); err != nil {
		c.log.Warn("failed to clear session tokens", logger.Component("session"), logger.Error(err))
	}
	c.state.Dispatch(authstate.Logout{})
}

// CurrentUser is a pure read of the auth state; it never performs I/O.
// Returns nil when unauthenticated.
func (c *Controller) CurrentUser() *identity.Claims {
	return c.state.State().Identity
}

// Restore reconstructs the auth state after a process restart from whatever
// the credential store still holds. Junk, such as partial identifier sets or
// undecodable and expired bearer tokens, is cleared, never authenticated
// from.
func (c *Controller) Restore(ctx context.Context) error {
	if token, err := c.creds.Get(ctx, c.cfg.BearerEntry); err == nil {
		claims, err := identity.Decode(token)
		if err != nil || claims.Expired() {
			if err := c.creds.Clear(ctx, c.cfg.BearerEntry); err != nil {
				return err
			}
		} else {
			c.state.Dispatch(authstate.Login{Claims: claims})
			return nil
		}
	} else if !errors.Is(err, credstore.ErrNotFound) {
		return err
	}

	tokens, err := loadTokens(ctx, c.creds)
	if err != nil {
		return err
	}

	switch {
	case tokens.Complete():
		claims, err := identity.Decode(tokens.UID)
		if err != nil {
			c.log.Warn("stored UID does not decode, clearing", logger.Component("session"), logger.Error(err))
			return clearTokens(ctx, c.creds)
		}
		c.state.Dispatch(authstate.Login{Claims: claims})
		return nil
	case tokens.Partial():
		c.log.Warn("partial session identifier set found, clearing", logger.Component("session"))
		return clearTokens(ctx, c.creds)
	default:
		return nil
	}
}

// saveTokens persists a complete grant. AID is written only when issued.
func (c *Controller) saveTokens(ctx context.Context, grant Tokens) error {
	opts := []credstore.Option{
		credstore.WithSecure(c.cfg.CookieSecure),
		credstore.WithCrossSite(c.cfg.CookieCrossSite),
	}

	values := map[string]string{
		TokenUID: grant.UID,
		TokenCID: grant.CID,
		TokenSID: grant.SID,
	}
	for _, name := range coreTokenNames {
		if err := c.creds.Set(ctx, name, values[name], opts...); err != nil {
			return err
		}
	}

	if grant.AID != "" {
		if err := c.creds.Set(ctx, TokenAID, grant.AID, opts...); err != nil {
			return err
		}
	}

	return nil
}
