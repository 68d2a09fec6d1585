package admin

import (
	"sync"
	"time"

	"github.com/phoenixwrites/phoenix/auth"
)

// Workspaces keeps one editor per signed-in admin. An editor lives until its
// admin signs out or the process exits.
type Workspaces struct {
	now func() time.Time

	mu      sync.Mutex
	editors map[uint]*Editor
}

// NewWorkspaces creates an empty registry.
func NewWorkspaces(now func() time.Time) *Workspaces {
	return &Workspaces{now: now, editors: map[uint]*Editor{}}
}

// For returns the editor of id, seeding a new one on first use.
func (w *Workspaces) For(id auth.Identity) *Editor {
	w.mu.Lock()
	defer w.mu.Unlock()
	ed, ok := w.editors[id.UserID]
	if !ok {
		ed = NewEditor(SamplePosts(), w.now)
		w.editors[id.UserID] = ed
	}
	return ed
}

// Drop discards the editor of id.
func (w *Workspaces) Drop(id auth.Identity) {
	w.mu.Lock()
	delete(w.editors, id.UserID)
	w.mu.Unlock()
}
