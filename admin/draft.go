package admin

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/phoenixwrites/phoenix/models"
)

// Mode tells whether a draft creates a new post or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Draft is the editable form mirror of a post.
type Draft struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Category      string `json:"category"`
	FeaturedImage string `json:"featured_image"`
}

// EmptyDraft is a fresh create-mode form.
func EmptyDraft() Draft {
	return Draft{Category: models.CategoryWritingTips}
}

// DraftOf loads the form from an existing post.
func DraftOf(p models.Post) Draft {
	return Draft{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		Category:      p.Category,
		FeaturedImage: p.FeaturedImage,
	}
}

// Mode is edit when the draft carries an id.
func (d Draft) Mode() Mode {
	if d.ID != "" {
		return ModeEdit
	}
	return ModeCreate
}

// ValidationError reports the first invalid draft field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks required fields, the category, and the image URL.
func (d Draft) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"title", d.Title},
		{"excerpt", d.Excerpt},
		{"content", d.Content},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Reason: "is required"}
		}
	}
	if !models.IsValidCategory(d.Category) {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("must be one of %s", strings.Join(models.Categories(), ", "))}
	}
	if d.FeaturedImage != "" {
		u, err := url.Parse(d.FeaturedImage)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ValidationError{Field: "featured_image", Reason: "must be an absolute http(s) URL"}
		}
	}
	return nil
}

func (d Draft) apply(p *models.Post) {
	p.Title = d.Title
	p.Content = d.Content
	p.Excerpt = d.Excerpt
	p.Category = d.Category
	p.FeaturedImage = d.FeaturedImage
}
