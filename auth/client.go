package auth

import (
	"context"
	"sync"
)

// Client is one browser session's view of the authentication service.
// It remembers the bearer token between calls.
type Client struct {
	svc *Service

	mu    sync.Mutex
	token string
}

// Client returns a session client bound to token, which may be empty.
func (s *Service) Client(token string) *Client {
	return &Client{svc: s, token: token}
}

// SignIn exchanges credentials for a session and keeps its token.
func (c *Client) SignIn(ctx context.Context, identifier, secret string) (Identity, error) {
	sess, err := c.svc.SignIn(ctx, identifier, secret)
	if err != nil {
		return Identity{}, err
	}
	c.mu.Lock()
	c.token = sess.Token
	c.mu.Unlock()
	return sess.Identity, nil
}

// SignOut revokes the current token and forgets it.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.token = ""
	c.mu.Unlock()
	if token == "" {
		return nil
	}
	return c.svc.Revoke(ctx, token)
}

// CurrentIdentity reports the identity behind the current token, if it is still valid.
func (c *Client) CurrentIdentity(ctx context.Context) (Identity, bool) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	id, err := c.svc.Verify(ctx, token)
	if err != nil {
		return Identity{}, false
	}
	return id, true
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}
