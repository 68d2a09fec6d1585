package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/phoenixwrites/phoenix/models"
)

const (
	cachePrefix     = "cache:posts:"
	cacheListKey    = cachePrefix + "list"
	cacheItemPrefix = cachePrefix + "item:"
)

// Cache is a byte cache with prefix invalidation; utils.RedisCache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, b []byte, ttl time.Duration)
	InvalidatePrefix(ctx context.Context, prefix string)
}

// CachedPostStore serves catalog reads from a cache in front of another PostStore.
// Writes go through and drop cached entries.
type CachedPostStore struct {
	next  PostStore
	cache Cache
	ttl   time.Duration
}

// NewCachedPostStore decorates next with cache.
func NewCachedPostStore(next PostStore, cache Cache, ttl time.Duration) *CachedPostStore {
	return &CachedPostStore{next: next, cache: cache, ttl: ttl}
}

func (s *CachedPostStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	if b, ok := s.cache.Get(ctx, cacheListKey); ok {
		var posts []models.Post
		if err := json.Unmarshal(b, &posts); err == nil {
			return posts, nil
		}
	}
	posts, err := s.next.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(posts); err == nil {
		s.cache.Set(ctx, cacheListKey, b, s.ttl)
	}
	return posts, nil
}

func (s *CachedPostStore) GetPost(ctx context.Context, id string) (models.Post, error) {
	key := cacheItemPrefix + id
	if b, ok := s.cache.Get(ctx, key); ok {
		var p models.Post
		if err := json.Unmarshal(b, &p); err == nil {
			return p, nil
		}
	}
	p, err := s.next.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if b, err := json.Marshal(p); err == nil {
		s.cache.Set(ctx, key, b, s.ttl)
	}
	return p, nil
}

func (s *CachedPostStore) CreatePost(ctx context.Context, p *models.Post) error {
	if err := s.next.CreatePost(ctx, p); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(ctx, cachePrefix)
	return nil
}
