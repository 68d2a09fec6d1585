package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phoenixwrites/phoenix/models"
)

const postsTableSQL = `CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    excerpt TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    featured_image TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

const postColumns = `id::text, title, content, COALESCE(excerpt, ''), COALESCE(category, ''),
	COALESCE(featured_image, ''), created_at, updated_at`

// PgxPostStore reads the catalog from a Postgres database such as Supabase.
type PgxPostStore struct {
	pool *pgxpool.Pool
}

// NewPgxPostStore connects to databaseURL and pings it.
func NewPgxPostStore(ctx context.Context, databaseURL string) (*PgxPostStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PgxPostStore{pool: pool}, nil
}

// Close releases the pool.
func (s *PgxPostStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the posts table if it does not exist.
func (s *PgxPostStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postsTableSQL); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func (s *PgxPostStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return posts, nil
}

func (s *PgxPostStore) GetPost(ctx context.Context, id string) (models.Post, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id::text = $1`, id)
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Post{}, ErrNotFound
	}
	return p, err
}

func (s *PgxPostStore) CreatePost(ctx context.Context, p *models.Post) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO posts (id, title, content, excerpt, category, featured_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Title, p.Content, p.Excerpt, p.Category, p.FeaturedImage, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func scanPost(row pgx.Row) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Category, &p.FeaturedImage, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, err
		}
		return models.Post{}, fmt.Errorf("scan post: %w", err)
	}
	return p, nil
}
