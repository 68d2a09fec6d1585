// Package store holds the persistence boundaries: the post catalog read by the
// blog and the admin accounts used for sign-in.
package store

import (
	"context"
	"errors"

	"github.com/phoenixwrites/phoenix/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// PostStore is the remote post catalog. ListPosts returns posts newest first.
type PostStore interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	CreatePost(ctx context.Context, p *models.Post) error
}

// UserStore persists admin accounts.
type UserStore interface {
	FindAdminByEmail(ctx context.Context, email string) (models.AdminUser, error)
	FindAdminByID(ctx context.Context, id uint) (models.AdminUser, error)
	CreateAdmin(ctx context.Context, u *models.AdminUser) error
}
