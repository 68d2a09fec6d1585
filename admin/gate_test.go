package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenixwrites/phoenix/auth"
)

type fakeAuth struct {
	current    *auth.Identity
	password   string
	signOutErr error
	signOuts   int
}

func (f *fakeAuth) SignIn(_ context.Context, identifier, secret string) (auth.Identity, error) {
	if secret != f.password {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}
	id := auth.Identity{UserID: 1, Email: identifier}
	f.current = &id
	return id, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.signOuts++
	f.current = nil
	return f.signOutErr
}

func (f *fakeAuth) CurrentIdentity(context.Context) (auth.Identity, bool) {
	if f.current == nil {
		return auth.Identity{}, false
	}
	return *f.current, true
}

func TestGate_Transitions(t *testing.T) {
	ctx := context.Background()
	fa := &fakeAuth{password: "right"}
	g := NewGate(fa, nil)
	assert.Equal(t, GateUnchecked, g.State())

	assert.Equal(t, GateUnauthenticated, g.Activate(ctx))

	err := g.SignIn(ctx, "a@b.c", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, GateUnauthenticated, g.State())
	assert.NotEmpty(t, g.ErrorMessage())

	require.NoError(t, g.SignIn(ctx, "a@b.c", "right"))
	assert.Equal(t, GateAuthenticated, g.State())
	assert.Empty(t, g.ErrorMessage())
	id, ok := g.Identity()
	assert.True(t, ok)
	assert.Equal(t, "a@b.c", id.Email)
}

func TestGate_ActivateWithExistingIdentity(t *testing.T) {
	fa := &fakeAuth{current: &auth.Identity{UserID: 9}}
	g := NewGate(fa, nil)
	assert.Equal(t, GateAuthenticated, g.Activate(context.Background()))
}

func TestGate_SignOutIsUnconditional(t *testing.T) {
	ctx := context.Background()
	fa := &fakeAuth{current: &auth.Identity{UserID: 9}, signOutErr: errors.New("network down")}
	g := NewGate(fa, nil)
	g.Activate(ctx)

	err := g.SignOut(ctx)
	assert.Error(t, err)
	assert.Equal(t, GateUnauthenticated, g.State())
	assert.Equal(t, 1, fa.signOuts)
	_, ok := g.Identity()
	assert.False(t, ok)
}

func TestGate_OtherErrorsGetGenericMessage(t *testing.T) {
	g := NewGate(&errAuth{}, nil)
	assert.Error(t, g.SignIn(context.Background(), "x", "y"))
	assert.Equal(t, "Sign in failed, please try again", g.ErrorMessage())
}

type errAuth struct{ fakeAuth }

func (errAuth) SignIn(context.Context, string, string) (auth.Identity, error) {
	return auth.Identity{}, errors.New("db down")
}

func TestWorkspaces(t *testing.T) {
	w := NewWorkspaces(nil)
	a := auth.Identity{UserID: 1}
	b := auth.Identity{UserID: 2}

	edA := w.For(a)
	assert.Same(t, edA, w.For(a))
	assert.NotSame(t, edA, w.For(b))

	_, err := edA.Create(validDraft())
	require.NoError(t, err)
	assert.Len(t, w.For(a).Posts(), 3)
	assert.Len(t, w.For(b).Posts(), 2)

	w.Drop(a)
	assert.Len(t, w.For(a).Posts(), 2)
}
