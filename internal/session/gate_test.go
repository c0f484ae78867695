package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUsers = []Credentials{
	{Username: "user1", Password: "password1"},
	{Username: "user2", Password: "password2"},
}

func TestGate_StartsAnonymous(t *testing.T) {
	g := NewGate(testUsers, 0, nil)

	assert.False(t, g.Authenticated())
	assert.Equal(t, LoginIdle, g.LoginState())
}

func TestGate_Login_Success(t *testing.T) {
	g := NewGate(testUsers, time.Millisecond, nil)

	err := g.Login(context.Background(), "user1", "password1")
	require.NoError(t, err)

	assert.True(t, g.Authenticated())
	assert.Equal(t, LoginIdle, g.LoginState())
}

func TestGate_Login_BadCredentials(t *testing.T) {
	g := NewGate(testUsers, time.Millisecond, nil)

	err := g.Login(context.Background(), "user1", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.False(t, g.Authenticated())

	// Failure leaves the control idle and re-enterable.
	err = g.Login(context.Background(), "user1", "password1")
	require.NoError(t, err)
	assert.True(t, g.Authenticated())
}

func TestGate_Login_AtMostOneInFlight(t *testing.T) {
	g := NewGate(testUsers, 200*time.Millisecond, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = g.Login(context.Background(), "user1", "password1")
	}()

	// Wait for the first attempt to enter its pending window.
	require.Eventually(t, func() bool {
		return g.LoginState() == LoginPending
	}, time.Second, time.Millisecond)

	err := g.Login(context.Background(), "user2", "password2")
	assert.ErrorIs(t, err, ErrLoginPending)

	wg.Wait()
	assert.True(t, g.Authenticated())
}

func TestGate_Login_ContextCancelled(t *testing.T) {
	g := NewGate(testUsers, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Login(ctx, "user1", "password1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, g.Authenticated())
	assert.Equal(t, LoginIdle, g.LoginState())
}

func TestGate_Logout_RunsHookOnce(t *testing.T) {
	var cleared int
	g := NewGate(testUsers, 0, func() { cleared++ })

	require.NoError(t, g.Login(context.Background(), "user1", "password1"))

	g.Logout()
	assert.False(t, g.Authenticated())
	assert.Equal(t, 1, cleared)

	// Logging out while already anonymous must not clear again.
	g.Logout()
	assert.Equal(t, 1, cleared)
}
