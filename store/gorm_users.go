package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/phoenixwrites/phoenix/models"
)

// GormUserStore keeps admin accounts in the primary database.
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore wraps db.
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// FindAdminByEmail matches emails case-insensitively; they are stored lower-cased.
func (s *GormUserStore) FindAdminByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	var u models.AdminUser
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AdminUser{}, ErrNotFound
	}
	if err != nil {
		return models.AdminUser{}, fmt.Errorf("find admin: %w", err)
	}
	return u, nil
}

func (s *GormUserStore) FindAdminByID(ctx context.Context, id uint) (models.AdminUser, error) {
	var u models.AdminUser
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AdminUser{}, ErrNotFound
	}
	if err != nil {
		return models.AdminUser{}, fmt.Errorf("find admin %d: %w", id, err)
	}
	return u, nil
}

func (s *GormUserStore) CreateAdmin(ctx context.Context, u *models.AdminUser) error {
	u.Email = normalizeEmail(u.Email)
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AdminUser{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("check admin email: %w", err)
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// ErrDuplicateEmail is returned when an admin with the same email exists.
var ErrDuplicateEmail = errors.New("admin email already registered")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
