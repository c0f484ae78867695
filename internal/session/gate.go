// Package session tracks whether the single demo session is authenticated
// and gates every cart-mutating entry point on that state.
package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrLoginPending   = errors.New("a login attempt is already in progress")
	ErrBadCredentials = errors.New("invalid username or password")
)

// State of the session.
type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

// LoginState of the login control. While a credential check is pending the
// control is disabled: a second attempt fails fast instead of stacking.
type LoginState int

const (
	LoginIdle LoginState = iota
	LoginPending
)

// Credentials is one entry of the configured demo-user list.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Gate holds the session state. The credential check is a mock: it matches
// against a fixed user list after an artificial delay, standing in for a
// real authentication backend.
type Gate struct {
	mu       sync.Mutex
	state    State
	login    LoginState
	users    []Credentials
	delay    time.Duration
	onLogout func()
}

// NewGate starts Anonymous. onLogout runs on every Authenticated->Anonymous
// transition (it is where the cart gets cleared); nil is allowed.
func NewGate(users []Credentials, delay time.Duration, onLogout func()) *Gate {
	return &Gate{
		state:    Anonymous,
		users:    users,
		delay:    delay,
		onLogout: onLogout,
	}
}

// Authenticated reports whether the session may mutate the cart.
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state == Authenticated
}

// LoginState reports whether a credential check is in flight.
func (g *Gate) LoginState() LoginState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.login
}

// Login runs the mock credential check. At most one attempt may be in
// flight; a concurrent attempt returns ErrLoginPending immediately. A failed
// attempt returns ErrBadCredentials and leaves the gate re-enterable; there
// is no retry policy beyond calling Login again.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	g.mu.Lock()
	if g.login == LoginPending {
		g.mu.Unlock()
		return ErrLoginPending
	}
	g.login = LoginPending
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.login = LoginIdle
		g.mu.Unlock()
	}()

	// Simulated backend latency.
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	if !g.checkCredentials(username, password) {
		return ErrBadCredentials
	}

	g.mu.Lock()
	g.state = Authenticated
	g.mu.Unlock()
	return nil
}

func (g *Gate) checkCredentials(username, password string) bool {
	for _, u := range g.users {
		if u.Username == username && u.Password == password {
			return true
		}
	}
	return false
}

// Logout returns the session to Anonymous and runs the logout hook, which
// empties the cart and closes any open cart or checkout view. Safe to call
// when already Anonymous.
func (g *Gate) Logout() {
	g.mu.Lock()
	if g.state == Anonymous {
		g.mu.Unlock()
		return
	}
	g.state = Anonymous
	g.mu.Unlock()

	if g.onLogout != nil {
		g.onLogout()
	}
}
