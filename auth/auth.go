// Package auth signs admins in with email and password and issues JWT sessions.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/phoenixwrites/phoenix/models"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

var (
	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// Identity is the signed-in admin.
type Identity struct {
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Session is an issued bearer token.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  Identity  `json:"identity"`
}

// Blacklist remembers tokens revoked by sign-out; utils.TokenBlacklist satisfies it.
type Blacklist interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) bool
}

// Service verifies credentials against the user store.
type Service struct {
	users     store.UserStore
	secret    []byte
	ttl       time.Duration
	blacklist Blacklist
	log       *zap.Logger
}

// NewService builds a Service. ttl is the session lifetime.
func NewService(users store.UserStore, secret string, ttl time.Duration, bl Blacklist, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, secret: []byte(secret), ttl: ttl, blacklist: bl, log: log}
}

// SignIn checks email and password and issues a session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}
	u, err := s.users.FindAdminByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Info("admin sign-in rejected", zap.String("email", email), zap.String("reason", "unknown email"))
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("sign in: %w", err)
	}
	if !utils.CheckPassword(u.PasswordHash, password) {
		s.log.Info("admin sign-in rejected", zap.String("email", email), zap.String("reason", "bad password"))
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := utils.GenerateToken(s.secret, u.ID, u.Email, s.ttl)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	s.log.Info("admin signed in", zap.Uint("user_id", u.ID))
	return Session{Token: token, ExpiresAt: exp, Identity: identityOf(u)}, nil
}

// Verify parses a token and returns the identity it carries.
func (s *Service) Verify(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrInvalidToken
	}
	if s.blacklist != nil && s.blacklist.IsRevoked(ctx, token) {
		return Identity{}, ErrTokenRevoked
	}
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	u, err := s.users.FindAdminByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return Identity{}, ErrInvalidToken
	}
	if err != nil {
		return Identity{}, fmt.Errorf("verify token: %w", err)
	}
	return identityOf(u), nil
}

// Revoke blacklists token until its natural expiry. Invalid tokens are ignored.
func (s *Service) Revoke(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil || s.blacklist == nil {
		return nil
	}
	return s.blacklist.Revoke(ctx, token, claims.ExpiresAt.Time)
}

// CreateAdmin hashes password and stores a new admin account.
func (s *Service) CreateAdmin(ctx context.Context, email, password, displayName string) (models.AdminUser, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.AdminUser{}, err
	}
	u := models.AdminUser{Email: email, PasswordHash: hash, DisplayName: displayName}
	if err := s.users.CreateAdmin(ctx, &u); err != nil {
		return models.AdminUser{}, err
	}
	return u, nil
}

func identityOf(u models.AdminUser) Identity {
	name := u.DisplayName
	if name == "" {
		name = u.Email
	}
	return Identity{UserID: u.ID, Email: u.Email, DisplayName: name}
}
