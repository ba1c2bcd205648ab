// Package authstate provides a reducer-style authentication state container
// with a tagged-union action contract.
//
// The store is explicit and ownership-scoped: construct one, pass it down,
// and mutate it only through Dispatch. Three actions exist: Login (carrying
// decoded identity claims), Logout, and SetLoading. The reducer guarantees
// the store never holds Authenticated=true without an identity payload.
//
//	store := authstate.New()
//	store.Dispatch(authstate.Login{Claims: claims})
//	if store.State().Authenticated { ... }
//
// ErrorStore is the sibling error slice: login and registration failures are
// recorded there for display rather than propagated as panics or lost.
package authstate
