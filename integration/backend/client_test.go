package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shopkit/core/checkout"
	"github.com/dmitrymomot/shopkit/core/routeguard"
	"github.com/dmitrymomot/shopkit/core/session"
	"github.com/dmitrymomot/shopkit/integration/backend"
)

func newClient(t *testing.T, srv *httptest.Server) *backend.Client {
	t.Helper()
	c, err := backend.New(backend.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestNew_ConfigValidation(t *testing.T) {
	_, err := backend.New(backend.Config{})
	assert.ErrorIs(t, err, backend.ErrInvalidConfig)

	_, err = backend.New(backend.Config{BaseURL: "not a url"})
	assert.ErrorIs(t, err, backend.ErrInvalidConfig)
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("reads issued token headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/login", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@x.com", body["email"])
			assert.Equal(t, "secret", body["password"])

			w.Header().Set("UID", "u1")
			w.Header().Set("CID", "c1")
			w.Header().Set("SID", "s1")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		issued, err := newClient(t, srv).Login(ctx, session.Credentials{Email: "a@x.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, session.IssuedTokens{UID: "u1", CID: "c1", SID: "s1"}, issued)
	})

	t.Run("non-2xx is a credential rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "wrong password", http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := newClient(t, srv).Login(ctx, session.Credentials{Email: "a@x.com", Password: "nope"})
		assert.ErrorIs(t, err, backend.ErrInvalidCredentials)
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // refuse connections

		_, err := newClient(t, srv).Login(ctx, session.Credentials{Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, backend.ErrRequestFailed)
	})
}

func TestClient_LoginToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@x.com", body["identifier"])
		assert.Equal(t, "secret", body["secret"])

		json.NewEncoder(w).Encode(map[string]string{"token": "ey.ab.cd", "message": "welcome"})
	}))
	defer srv.Close()

	grant, err := newClient(t, srv).LoginToken(context.Background(), session.Credentials{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, session.TokenGrant{Token: "ey.ab.cd", Message: "welcome"}, grant)
}

func TestClient_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards validation errors verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "email: already taken", http.StatusBadRequest)
		}))
		defer srv.Close()

		err := newClient(t, srv).Register(ctx, session.RegisterParams{Email: "a@x.com"})
		var verr *session.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email: already taken", verr.Message)
	})

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/users", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		assert.NoError(t, newClient(t, srv).Register(ctx, session.RegisterParams{
			Username: "alice", Email: "a@x.com", Password: "secret",
		}))
	})
}

func TestClient_Orders(t *testing.T) {
	ctx := context.Background()

	t.Run("missing AID yields session mismatch on 404", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("AID"))
			http.NotFound(w, r)
		}))
		defer srv.Close()

		_, err := newClient(t, srv).Orders(ctx, "")
		assert.ErrorIs(t, err, routeguard.ErrSessionMismatch)
	})

	t.Run("valid AID returns orders", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "a1", r.Header.Get("AID"))
			json.NewEncoder(w).Encode([]backend.Order{{ID: "o1", Status: "pending", Total: 19.99}})
		}))
		defer srv.Close()

		orders, err := newClient(t, srv).Orders(ctx, "a1")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "o1", orders[0].ID)
	})

	t.Run("CheckAccess satisfies the route guard prober", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		var prober routeguard.Prober = newClient(t, srv)
		assert.ErrorIs(t, prober.CheckAccess(ctx, "stale"), routeguard.ErrSessionMismatch)
	})
}

func TestClient_PaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the client secret", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/payment", r.URL.Path)

			var body struct {
				Items []checkout.CartItem `json:"items"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Items, 1)
			assert.Equal(t, "xl-tshirt", body.Items[0].ID)

			json.NewEncoder(w).Encode(map[string]string{"clientSecret": "cs_1"})
		}))
		defer srv.Close()

		secret, err := newClient(t, srv).PaymentIntent(ctx, []checkout.CartItem{{ID: "xl-tshirt"}})
		require.NoError(t, err)
		assert.Equal(t, "cs_1", secret)
	})

	t.Run("success without a secret is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		_, err := newClient(t, srv).PaymentIntent(ctx, []checkout.CartItem{{ID: "x"}})
		assert.ErrorIs(t, err, backend.ErrNoClientSecret)
	})
}

func TestClient_Collections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode([]backend.Product{{ID: 1, Brand: "acme", Total: 10}})
		case "/shops":
			json.NewEncoder(w).Encode([]backend.Shop{{ID: 1, Name: "corner shop"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := newClient(t, srv)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "acme", products[0].Brand)

	shops, err := c.Shops(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "corner shop", shops[0].Name)
}
