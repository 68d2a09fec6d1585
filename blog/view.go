package blog

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/phoenixwrites/phoenix/models"
)

// ErrNotInCatalog is returned by OpenPost for ids absent from the loaded catalog.
var ErrNotInCatalog = errors.New("post not in catalog")

// View owns the blog screen state: the catalog loader, the filter criteria and
// the detail viewer. One View serves one activation of the blog screen.
type View struct {
	loader *Loader
	viewer *Viewer

	mu       sync.RWMutex
	criteria Criteria
}

// NewView creates a view over src with all posts selected.
func NewView(src Source, log *zap.Logger) *View {
	return &View{
		loader:   NewLoader(src, log),
		viewer:   NewViewer(),
		criteria: AllPosts,
	}
}

// Activate starts loading the catalog.
func (v *View) Activate(ctx context.Context) { v.loader.Activate(ctx) }

// Deactivate cancels loading and closes the detail view.
func (v *View) Deactivate() {
	v.loader.Deactivate()
	v.viewer.Close()
}

// Wait blocks until the catalog has loaded, failed, or ctx ends.
func (v *View) Wait(ctx context.Context) (Snapshot, error) { return v.loader.Wait(ctx) }

func (v *View) Snapshot() Snapshot { return v.loader.Snapshot() }

func (v *View) SetSearch(term string) {
	v.mu.Lock()
	v.criteria.Search = term
	v.mu.Unlock()
}

func (v *View) SetCategory(category string) {
	v.mu.Lock()
	v.criteria.Category = category
	v.mu.Unlock()
}

func (v *View) Criteria() Criteria {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.criteria
}

// Listing applies the current criteria to the current catalog.
func (v *View) Listing() Listing {
	return Arrange(Filter(v.loader.Snapshot().Posts, v.Criteria()))
}

// OpenPost opens the catalog post with the given id in the detail viewer.
func (v *View) OpenPost(id string) (models.Post, error) {
	for _, p := range v.loader.Snapshot().Posts {
		if p.ID == id {
			v.viewer.Open(p)
			return p, nil
		}
	}
	return models.Post{}, ErrNotInCatalog
}

func (v *View) ClosePost() { v.viewer.Close() }

func (v *View) Selection() Selection { return v.viewer.Current() }
