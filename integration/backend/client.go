package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/shopkit/core/checkout"
	"github.com/dmitrymomot/shopkit/core/routeguard"
	"github.com/dmitrymomot/shopkit/core/session"
	"github.com/dmitrymomot/shopkit/pkg/logger"
)

// Client is the storefront REST client. It implements session.API,
// checkout.IntentCreator and routeguard.Prober.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// compile-time interface checks
var (
	_ session.API            = (*Client)(nil)
	_ checkout.IntentCreator = (*Client)(nil)
	_ routeguard.Prober      = (*Client)(nil)
)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets a structured logger. Default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a storefront client. BaseURL is required and must be absolute.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("%w: BaseURL must be an absolute URL", ErrInvalidConfig)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Login authenticates against POST /login. On success the issued identifiers
// are carried as response headers: UID, CID, SID and, account-type
// dependent, AID.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.IssuedTokens, error) {
	body := map[string]string{"email": creds.Email, "password": creds.Password}

	resp, err := c.post(ctx, "/login", body)
	if err != nil {
		return session.IssuedTokens{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return session.IssuedTokens{}, errors.Join(ErrInvalidCredentials, statusError(resp))
	}

	return session.IssuedTokens{
		UID: resp.Header.Get("UID"),
		CID: resp.Header.Get("CID"),
		SID: resp.Header.Get("SID"),
		AID: resp.Header.Get("AID"),
	}, nil
}

// LoginToken authenticates against POST /users/login, the bearer-token
// variant.
func (c *Client) LoginToken(ctx context.Context, creds session.Credentials) (session.TokenGrant, error) {
	body := map[string]string{"identifier": creds.Email, "secret": creds.Password}

	resp, err := c.post(ctx, "/users/login", body)
	if err != nil {
		return session.TokenGrant{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return session.TokenGrant{}, errors.Join(ErrInvalidCredentials, statusError(resp))
	}

	var grant struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return session.TokenGrant{}, errors.Join(ErrRequestFailed, err)
	}

	return session.TokenGrant{Token: grant.Token, Message: grant.Message}, nil
}

// Register creates an account via POST /users. Validation failures come back
// as *session.ValidationError with the backend message verbatim so views can
// display it unchanged.
func (c *Client) Register(ctx context.Context, params session.RegisterParams) error {
	body := map[string]string{
		"username": params.Username,
		"email":    params.Email,
		"password": params.Password,
	}

	resp, err := c.post(ctx, "/users", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := readBody(resp)
		if msg == "" {
			return statusError(resp)
		}
		return &session.ValidationError{Message: msg}
	}

	return nil
}

// CheckAccess probes GET /orders with the delegated-access identifier. A
// not-found or unauthorized answer means the local session is stale and maps
// to routeguard.ErrSessionMismatch.
func (c *Client) CheckAccess(ctx context.Context, aid string) error {
	_, err := c.Orders(ctx, aid)
	return err
}

// Orders fetches the authenticated user's orders.
func (c *Client) Orders(ctx context.Context, aid string) ([]Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	if aid != "" {
		req.Header.Set("AID", aid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.Join(routeguard.ErrSessionMismatch, statusError(resp))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, statusError(resp)
	}

	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return orders, nil
}

// PaymentIntent creates a payment intent for the given items via
// POST /payment and returns its client secret.
func (c *Client) PaymentIntent(ctx context.Context, items []checkout.CartItem) (string, error) {
	body := struct {
		Items []checkout.CartItem `json:"items"`
	}{Items: items}

	resp, err := c.post(ctx, "/payment", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusError(resp)
	}

	var payload struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}
	if payload.ClientSecret == "" {
		return "", ErrNoClientSecret
	}

	return payload.ClientSecret, nil
}

// Products fetches the catalog listing.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	return getCollection[Product](ctx, c, "/products")
}

// Shops fetches the shop listing.
func (c *Client) Shops(ctx context.Context) ([]Shop, error) {
	return getCollection[Shop](ctx, c, "/shops")
}

// Reviews fetches the review listing.
func (c *Client) Reviews(ctx context.Context) ([]Review, error) {
	return getCollection[Review](ctx, c, "/reviews")
}

// Users fetches the public user listing.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	return getCollection[User](ctx, c, "/users")
}

func getCollection[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return items, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			logger.Component("backend"), slog.String("path", path), logger.Error(err))
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	return req, nil
}

// statusError drains the response body into a StatusError.
func statusError(resp *http.Response) *StatusError {
	return &StatusError{Status: resp.StatusCode, Body: readBody(resp)}
}

func readBody(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
