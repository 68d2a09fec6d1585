package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/models"
)

type GormStoreSuite struct {
	suite.Suite
	posts *GormPostStore
	users *GormUserStore
}

func TestGormStoreSuite(t *testing.T) {
	suite.Run(t, new(GormStoreSuite))
}

func (s *GormStoreSuite) SetupTest() {
	db, err := config.OpenDatabase(config.AppConfig{DBDriver: "sqlite", SQLitePath: "file::memory:", LogLevel: "silent"})
	s.Require().NoError(err)
	s.Require().NoError(config.Migrate(db, &models.Post{}, &models.AdminUser{}))
	s.posts = NewGormPostStore(db)
	s.users = NewGormUserStore(db)
}

func (s *GormStoreSuite) TestListPostsNewestFirst() {
	ctx := context.Background()
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "newest", "middle"} {
		offset := map[int]time.Duration{0: 0, 1: 48 * time.Hour, 2: 24 * time.Hour}[i]
		s.Require().NoError(s.posts.CreatePost(ctx, &models.Post{
			ID: title, Title: title, Content: "c", Excerpt: "e", Category: models.CategoryBusiness,
			CreatedAt: base.Add(offset), UpdatedAt: base.Add(offset),
		}))
	}

	posts, err := s.posts.ListPosts(ctx)
	s.Require().NoError(err)
	s.Require().Len(posts, 3)
	s.Equal("newest", posts[0].ID)
	s.Equal("middle", posts[1].ID)
	s.Equal("old", posts[2].ID)
}

func (s *GormStoreSuite) TestListPostsEmptyIsNotNil() {
	posts, err := s.posts.ListPosts(context.Background())
	s.Require().NoError(err)
	s.NotNil(posts)
	s.Empty(posts)
}

func (s *GormStoreSuite) TestGetPost() {
	ctx := context.Background()
	s.Require().NoError(s.posts.CreatePost(ctx, &models.Post{ID: "a1", Title: "T", Content: "C", Excerpt: "E"}))

	got, err := s.posts.GetPost(ctx, "a1")
	s.Require().NoError(err)
	s.Equal("T", got.Title)

	_, err = s.posts.GetPost(ctx, "missing")
	s.ErrorIs(err, ErrNotFound)
}

func (s *GormStoreSuite) TestAdminUsers() {
	ctx := context.Background()
	u := &models.AdminUser{Email: "  Phoenix@Example.com ", PasswordHash: "hash"}
	s.Require().NoError(s.users.CreateAdmin(ctx, u))
	s.NotZero(u.ID)
	s.Equal("phoenix@example.com", u.Email)

	found, err := s.users.FindAdminByEmail(ctx, "PHOENIX@example.com")
	s.Require().NoError(err)
	s.Equal(u.ID, found.ID)

	byID, err := s.users.FindAdminByID(ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(found.Email, byID.Email)

	s.ErrorIs(s.users.CreateAdmin(ctx, &models.AdminUser{Email: "phoenix@example.com", PasswordHash: "x"}), ErrDuplicateEmail)

	_, err = s.users.FindAdminByEmail(ctx, "nobody@example.com")
	s.ErrorIs(err, ErrNotFound)
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	return b, ok
}

func (c *memCache) Set(_ context.Context, key string, b []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
}

func (c *memCache) InvalidatePrefix(_ context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
}

type countingStore struct {
	posts []models.Post
	lists int
	gets  int
	err   error
}

func (s *countingStore) ListPosts(context.Context) ([]models.Post, error) {
	s.lists++
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Post(nil), s.posts...), nil
}

func (s *countingStore) GetPost(_ context.Context, id string) (models.Post, error) {
	s.gets++
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, ErrNotFound
}

func (s *countingStore) CreatePost(_ context.Context, p *models.Post) error {
	s.posts = append([]models.Post{*p}, s.posts...)
	return nil
}

type CachedStoreSuite struct {
	suite.Suite
	backing *countingStore
	cache   *memCache
	store   *CachedPostStore
}

func TestCachedStoreSuite(t *testing.T) {
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupTest() {
	s.backing = &countingStore{posts: []models.Post{{ID: "1", Title: "One"}}}
	s.cache = newMemCache()
	s.store = NewCachedPostStore(s.backing, s.cache, time.Minute)
}

func (s *CachedStoreSuite) TestListServedFromCache() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		posts, err := s.store.ListPosts(ctx)
		s.Require().NoError(err)
		s.Len(posts, 1)
	}
	s.Equal(1, s.backing.lists)
}

func (s *CachedStoreSuite) TestCreateInvalidates() {
	ctx := context.Background()
	_, _ = s.store.ListPosts(ctx)
	_, _ = s.store.GetPost(ctx, "1")
	s.Require().NoError(s.store.CreatePost(ctx, &models.Post{ID: "2", Title: "Two"}))

	posts, err := s.store.ListPosts(ctx)
	s.Require().NoError(err)
	s.Len(posts, 2)
	s.Equal(2, s.backing.lists)
}

func (s *CachedStoreSuite) TestGetCachedAndMissNotCached() {
	ctx := context.Background()
	_, _ = s.store.GetPost(ctx, "1")
	_, _ = s.store.GetPost(ctx, "1")
	s.Equal(1, s.backing.gets)

	_, err := s.store.GetPost(ctx, "nope")
	s.ErrorIs(err, ErrNotFound)
	_, _ = s.store.GetPost(ctx, "nope")
	s.Equal(3, s.backing.gets)
}

func (s *CachedStoreSuite) TestErrorsNotCached() {
	s.backing.err = errors.New("down")
	_, err := s.store.ListPosts(context.Background())
	s.Error(err)
	s.backing.err = nil
	posts, err := s.store.ListPosts(context.Background())
	s.Require().NoError(err)
	s.Len(posts, 1)
}
