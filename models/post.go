package models

import (
	"time"

	"github.com/gosimple/slug"
)

// Post is a blog entry. Ids are opaque strings so posts seeded from a remote
// store keep their identifiers.
type Post struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Excerpt       string    `gorm:"size:1024;not null" json:"excerpt"`
	Category      string    `gorm:"size:32;index" json:"category"`
	FeaturedImage string    `gorm:"size:1024" json:"featured_image"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Slug is the URL fragment used by the public detail page.
func (p Post) Slug() string {
	s := slug.Make(p.Title)
	if s == "" {
		return "post"
	}
	return s
}

// LongDate formats CreatedAt the way post listings display it.
func (p Post) LongDate() string {
	return p.CreatedAt.Format("January 2, 2006")
}
