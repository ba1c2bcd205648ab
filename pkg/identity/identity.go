package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken is returned when a bearer token cannot be decoded
	// into identity claims.
	ErrMalformedToken = errors.New("malformed identity token")

	// ErrExpiredToken is returned by Parse when the token signature is valid
	// but the expiry claim is in the past.
	ErrExpiredToken = errors.New("identity token expired")

	// ErrInvalidSignature is returned by Parse when signature verification fails.
	ErrInvalidSignature = errors.New("identity token signature verification failed")
)

// Claims is the decoded identity payload carried by a backend-issued bearer
// token. Username is the minimum the backend guarantees; the remaining fields
// are present depending on which endpoint issued the token.
type Claims struct {
	Subject   string
	Email     string
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the claims carry an expiry in the past.
// Claims without an expiry never expire.
func (c Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// DisplayName returns the best available human-readable identifier.
func (c Claims) DisplayName() string {
	switch {
	case c.Username != "":
		return c.Username
	case c.Email != "":
		return c.Email
	default:
		return c.Subject
	}
}

// Decode extracts identity claims from a bearer token without verifying its
// signature. The client holds no signing key; the backend remains the
// authority and re-validates the token on every protected request.
func Decode(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}

	return fromMapClaims(mapClaims), nil
}

// Parse decodes identity claims with HMAC signature verification. Used where
// the signing secret is available, unlike the browser-equivalent Decode path.
func Parse(token, secret string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.Join(ErrExpiredToken, err)
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, errors.Join(ErrInvalidSignature, err)
		default:
			return nil, errors.Join(ErrMalformedToken, err)
		}
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}

	return fromMapClaims(mapClaims), nil
}

// fromMapClaims maps raw JWT claims onto the Claims struct. The backend
// variants disagree on claim names (id vs sub, username vs name), so all
// observed spellings are accepted.
func fromMapClaims(mc jwt.MapClaims) *Claims {
	c := &Claims{}

	if sub := stringClaim(mc, "sub"); sub != "" {
		c.Subject = sub
	} else {
		c.Subject = stringClaim(mc, "id")
	}

	c.Email = stringClaim(mc, "email")

	if name := stringClaim(mc, "username"); name != "" {
		c.Username = name
	} else {
		c.Username = stringClaim(mc, "name")
	}

	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}

	return c
}

func stringClaim(mc jwt.MapClaims, key string) string {
	v, ok := mc[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
