// Package admin holds the password-gated post editor.
package admin

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/phoenixwrites/phoenix/auth"
)

// Authenticator is the sign-in collaborator; *auth.Client satisfies it.
type Authenticator interface {
	SignIn(ctx context.Context, identifier, secret string) (auth.Identity, error)
	SignOut(ctx context.Context) error
	CurrentIdentity(ctx context.Context) (auth.Identity, bool)
}

// GateState is the admin gate state.
type GateState int

const (
	GateUnchecked GateState = iota
	GateAuthenticated
	GateUnauthenticated
)

func (s GateState) String() string {
	switch s {
	case GateAuthenticated:
		return "authenticated"
	case GateUnauthenticated:
		return "unauthenticated"
	default:
		return "unchecked"
	}
}

// Gate guards the editor behind an authenticated identity.
type Gate struct {
	auth Authenticator
	log  *zap.Logger

	mu       sync.RWMutex
	state    GateState
	identity auth.Identity
	errMsg   string
}

// NewGate returns an unchecked gate.
func NewGate(a Authenticator, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{auth: a, log: log}
}

// Activate asks the collaborator for the current identity.
func (g *Gate) Activate(ctx context.Context) GateState {
	id, ok := g.auth.CurrentIdentity(ctx)
	g.mu.Lock()
	defer g.mu.Unlock()
	if ok {
		g.state, g.identity = GateAuthenticated, id
	} else {
		g.state, g.identity = GateUnauthenticated, auth.Identity{}
	}
	return g.state
}

// SignIn submits credentials. On failure the gate stays unauthenticated and
// ErrorMessage carries the reason.
func (g *Gate) SignIn(ctx context.Context, identifier, secret string) error {
	id, err := g.auth.SignIn(ctx, identifier, secret)
	g.mu.Lock()
	defer g.mu.Unlock()
	if err != nil {
		g.state, g.identity = GateUnauthenticated, auth.Identity{}
		g.errMsg = signInMessage(err)
		return err
	}
	g.state, g.identity, g.errMsg = GateAuthenticated, id, ""
	return nil
}

// SignOut always ends unauthenticated; the collaborator's error is returned for logging.
func (g *Gate) SignOut(ctx context.Context) error {
	err := g.auth.SignOut(ctx)
	if err != nil {
		g.log.Warn("sign-out failed", zap.Error(err))
	}
	g.mu.Lock()
	g.state, g.identity, g.errMsg = GateUnauthenticated, auth.Identity{}, ""
	g.mu.Unlock()
	return err
}

func (g *Gate) State() GateState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Gate) Identity() (auth.Identity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.identity, g.state == GateAuthenticated
}

// ErrorMessage is the last sign-in failure shown to the user.
func (g *Gate) ErrorMessage() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.errMsg
}

func signInMessage(err error) string {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return "Invalid login credentials"
	}
	return "Sign in failed, please try again"
}
