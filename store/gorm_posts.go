package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/phoenixwrites/phoenix/models"
)

// GormPostStore reads the catalog from the primary database.
type GormPostStore struct {
	db *gorm.DB
}

// NewGormPostStore wraps db.
func NewGormPostStore(db *gorm.DB) *GormPostStore {
	return &GormPostStore{db: db}
}

func (s *GormPostStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *GormPostStore) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("get post %s: %w", id, err)
	}
	return post, nil
}

func (s *GormPostStore) CreatePost(ctx context.Context, p *models.Post) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}
