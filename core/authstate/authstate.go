package authstate

import (
	"sync"

	"github.com/dmitrymomot/shopkit/pkg/identity"
)

// State is the authentication snapshot read by every view needing auth
// context. Authenticated is true only after a decoded identity payload has
// been accepted; Loading is an orthogonal in-flight flag.
type State struct {
	Authenticated bool
	Identity      *identity.Claims
	Loading       bool
}

// Action is the tagged union of auth state transitions. Only the three
// variants in this package exist; the reducer is the sole mutation path.
type Action interface {
	isAction()
}

// Login transitions to the authenticated state carrying decoded claims.
// A Login with nil Claims is rejected by the reducer: the store never holds
// Authenticated=true without an identity.
type Login struct {
	Claims *identity.Claims
}

// Logout transitions to the unauthenticated state and drops the identity.
type Logout struct{}

// SetLoading toggles the orthogonal loading flag without touching
// authentication.
type SetLoading struct {
	Loading bool
}

func (Login) isAction()      {}
func (Logout) isAction()     {}
func (SetLoading) isAction() {}

// Store is an ownership-scoped auth state container. It is passed down
// explicitly to whoever needs it; there is no package-level singleton.
// Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  map[int]func(State)
	next  int
}

// New creates a store in the unauthenticated state.
func New() *Store {
	return &Store{subs: make(map[int]func(State))}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action through the reducer and notifies subscribers
// when the state changed. Returns the resulting state.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	next := reduce(s.state, action)
	changed := next != s.state
	s.state = next

	var subs []func(State)
	if changed {
		subs = make([]func(State), 0, len(s.subs))
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers a callback invoked after every state change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// reduce computes the next state. Unknown or invalid actions leave the state
// unchanged, so the invariant Authenticated => Identity != nil always holds.
func reduce(state State, action Action) State {
	switch a := action.(type) {
	case Login:
		if a.Claims == nil {
			return state
		}
		state.Authenticated = true
		state.Identity = a.Claims
		return state
	case Logout:
		state.Authenticated = false
		state.Identity = nil
		return state
	case SetLoading:
		state.Loading = a.Loading
		return state
	default:
		return state
	}
}
