package blog

import (
	"sync"

	"github.com/phoenixwrites/phoenix/models"
)

// Selection is what the detail view shows: NoSelection or SelectedPost.
type Selection interface {
	isSelection()
}

// NoSelection means the detail view is closed.
type NoSelection struct{}

// SelectedPost is the post open in the detail view.
type SelectedPost struct {
	Post models.Post
}

func (NoSelection) isSelection()  {}
func (SelectedPost) isSelection() {}

// Viewer holds at most one open post.
type Viewer struct {
	mu  sync.RWMutex
	sel Selection
}

// NewViewer returns a closed viewer.
func NewViewer() *Viewer {
	return &Viewer{sel: NoSelection{}}
}

// Open shows p, replacing any open post.
func (v *Viewer) Open(p models.Post) {
	v.mu.Lock()
	v.sel = SelectedPost{Post: p}
	v.mu.Unlock()
}

// Close hides the detail view and forgets the post.
func (v *Viewer) Close() {
	v.mu.Lock()
	v.sel = NoSelection{}
	v.mu.Unlock()
}

func (v *Viewer) Current() Selection {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sel
}

func (v *Viewer) IsOpen() bool {
	_, ok := v.Current().(SelectedPost)
	return ok
}
