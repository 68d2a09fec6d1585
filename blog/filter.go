package blog

import (
	"strings"

	"github.com/phoenixwrites/phoenix/models"
)

// Criteria is the filter state of the listing.
type Criteria struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
}

// AllPosts matches every post.
var AllPosts = Criteria{Category: models.CategoryAll}

func (c Criteria) category() string {
	if c.Category == "" {
		return models.CategoryAll
	}
	return c.Category
}

// Matches reports whether p passes both the category and the search predicate.
// Search is a case-insensitive substring match against title and excerpt.
func (c Criteria) Matches(p models.Post) bool {
	if cat := c.category(); cat != models.CategoryAll && p.Category != cat {
		return false
	}
	if c.Search == "" {
		return true
	}
	term := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Excerpt), term)
}

// Filter returns the posts matching c in their input order. posts is not modified.
func Filter(posts []models.Post, c Criteria) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Listing splits a filtered list into the featured post and the grid.
type Listing struct {
	Featured *models.Post  `json:"featured"`
	Rest     []models.Post `json:"posts"`
}

// Arrange features the first post and keeps the rest in order.
func Arrange(filtered []models.Post) Listing {
	if len(filtered) == 0 {
		return Listing{Rest: []models.Post{}}
	}
	featured := filtered[0]
	rest := append([]models.Post{}, filtered[1:]...)
	return Listing{Featured: &featured, Rest: rest}
}

// Empty is the "no articles found" state.
func (l Listing) Empty() bool { return l.Featured == nil }

// Total counts the featured post and the grid.
func (l Listing) Total() int {
	if l.Featured == nil {
		return 0
	}
	return 1 + len(l.Rest)
}
