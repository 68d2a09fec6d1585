package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phoenixwrites/phoenix/blog"
	"github.com/phoenixwrites/phoenix/models"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
	"github.com/phoenixwrites/phoenix/views"
)

const catalogWait = 10 * time.Second

// BlogController serves the public catalog.
type BlogController struct {
	posts store.PostStore
}

func NewBlogController(posts store.PostStore) *BlogController {
	return &BlogController{posts: posts}
}

// openView activates a blog view for this request and waits for the catalog.
// The caller must Deactivate the returned view.
func (b *BlogController) openView(ctx context.Context) (*blog.View, blog.Snapshot, error) {
	view := blog.NewView(b.posts, utils.Logger)
	view.Activate(ctx)
	waitCtx, cancel := context.WithTimeout(ctx, catalogWait)
	defer cancel()
	snap, err := view.Wait(waitCtx)
	return view, snap, err
}

// catalogFailed writes the error response for a view that did not become ready.
func catalogFailed(ctx *gin.Context, snap blog.Snapshot, waitErr error) bool {
	if waitErr != nil {
		utils.Error(ctx, http.StatusGatewayTimeout, 50401, "post store did not respond in time")
		return true
	}
	if snap.Status == blog.StatusError {
		utils.Error(ctx, http.StatusBadGateway, 50201, "failed to load posts")
		return true
	}
	return false
}

type listingResponse struct {
	Featured   *views.PostCard  `json:"featured"`
	Posts      []views.PostCard `json:"posts"`
	Total      int              `json:"total"`
	Empty      bool             `json:"empty"`
	Search     string           `json:"search"`
	Category   string           `json:"category"`
	Categories []string         `json:"categories"`
}

// ListPosts returns the filtered catalog, featured post first.
func (b *BlogController) ListPosts(ctx *gin.Context) {
	var c blog.Criteria
	_ = ctx.ShouldBindQuery(&c)
	c.Search = strings.TrimSpace(c.Search)

	view, snap, err := b.openView(ctx.Request.Context())
	defer view.Deactivate()
	if catalogFailed(ctx, snap, err) {
		return
	}

	view.SetSearch(c.Search)
	view.SetCategory(c.Category)
	listing := view.Listing()

	resp := listingResponse{
		Posts:      make([]views.PostCard, 0, len(listing.Rest)),
		Total:      listing.Total(),
		Empty:      listing.Empty(),
		Search:     c.Search,
		Category:   view.Criteria().Category,
		Categories: models.Categories(),
	}
	if resp.Category == "" {
		resp.Category = models.CategoryAll
	}
	if listing.Featured != nil {
		card := views.CardOf(*listing.Featured)
		resp.Featured = &card
	}
	for _, p := range listing.Rest {
		resp.Posts = append(resp.Posts, views.CardOf(p))
	}
	utils.Success(ctx, resp)
}

type postDetail struct {
	models.Post
	Slug   string `json:"slug"`
	URL    string `json:"url"`
	HTML   string `json:"html"`
	Author string `json:"author"`
	Date   string `json:"date"`
}

func detailOf(p models.Post) postDetail {
	return postDetail{
		Post:   p,
		Slug:   p.Slug(),
		URL:    views.PostURL(p),
		HTML:   views.RenderMarkdown(p.Content),
		Author: views.Author,
		Date:   p.LongDate(),
	}
}

// GetPost opens one catalog post in the detail view.
func (b *BlogController) GetPost(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	view, snap, err := b.openView(ctx.Request.Context())
	defer view.Deactivate()
	if catalogFailed(ctx, snap, err) {
		return
	}

	p, err := view.OpenPost(id)
	if errors.Is(err, blog.ErrNotInCatalog) {
		utils.Error(ctx, http.StatusNotFound, 40401, "post not found")
		return
	}
	utils.Success(ctx, detailOf(p))
}

// Categories lists the enumerated categories.
func (b *BlogController) Categories(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"categories": models.Categories(),
		"all":        models.CategoryAll,
	})
}
