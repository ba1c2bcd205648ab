package session

import (
	"context"
	"errors"

	"github.com/dmitrymomot/shopkit/core/credstore"
)

// Credential store entry names for the cookie-multiplex session strategy.
const (
	TokenUID = "UID" // user identifier
	TokenCID = "CID" // cart identifier
	TokenSID = "SID" // session identifier
	TokenAID = "AID" // delegated-access identifier, account-type dependent
)

// coreTokenNames are the identifiers issued together on every successful
// login. AID is deliberately not among them.
var coreTokenNames = [...]string{TokenUID, TokenCID, TokenSID}

// allTokenNames covers every session identifier for the total clear on logout.
var allTokenNames = [...]string{TokenUID, TokenCID, TokenSID, TokenAID}

// Tokens is the structured session identifier set. UID, CID and SID are
// issued together; AID is independent and must never be treated as proof of
// authentication by itself.
type Tokens struct {
	UID string
	CID string
	SID string
	AID string
}

// Complete reports whether all three core identifiers are present,
// regardless of AID.
func (t Tokens) Complete() bool {
	return t.UID != "" && t.CID != "" && t.SID != ""
}

// Empty reports whether no core identifier is present.
func (t Tokens) Empty() bool {
	return t.UID == "" && t.CID == "" && t.SID == ""
}

// Partial reports whether the core identifiers violate the all-or-nothing
// invariant: some but not all of UID/CID/SID are set. A partial set is junk
// left behind by an interrupted write and must not be trusted.
func (t Tokens) Partial() bool {
	return !t.Complete() && !t.Empty()
}

// loadTokens reads the full identifier set from the credential store.
// Absent entries are left as empty strings.
func loadTokens(ctx context.Context, store credstore.Store) (Tokens, error) {
	var t Tokens
	for _, name := range allTokenNames {
		v, err := store.Get(ctx, name)
		if err != nil {
			if errors.Is(err, credstore.ErrNotFound) {
				continue
			}
			return Tokens{}, err
		}
		switch name {
		case TokenUID:
			t.UID = v
		case TokenCID:
			t.CID = v
		case TokenSID:
			t.SID = v
		case TokenAID:
			t.AID = v
		}
	}
	return t, nil
}

// clearTokens removes all four identifiers, present or not. Logout is a
// total clear; the set is never partially removed.
func clearTokens(ctx context.Context, store credstore.Store) error {
	var errs []error
	for _, name := range allTokenNames {
		if err := store.Clear(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// clearCoreTokens removes only UID/CID/SID, restoring the all-or-nothing
// invariant after an interrupted write without revoking a prior AID.
func clearCoreTokens(ctx context.Context, store credstore.Store) error {
	var errs []error
	for _, name := range coreTokenNames {
		if err := store.Clear(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
