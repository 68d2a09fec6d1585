// Package blog is the public catalog: it loads posts from the post store,
// filters them, and tracks which post is open in the detail view.
package blog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/phoenixwrites/phoenix/models"
)

// Source is the read side of the post store.
type Source interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
}

// Status is the loader lifecycle state.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// FetchError wraps a failed catalog load.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch posts: " + e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// Snapshot is a point-in-time copy of the loader state. Posts is empty unless Status is StatusReady.
type Snapshot struct {
	Status Status
	Posts  []models.Post
	Err    error
}

// Loader fetches the catalog once per activation. A newer activation or a
// Deactivate cancels the in-flight fetch and its result is dropped.
type Loader struct {
	src Source
	log *zap.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	snap   Snapshot
}

// NewLoader creates an inactive loader in the loading state.
func NewLoader(src Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	closed := make(chan struct{})
	close(closed)
	return &Loader{
		src:  src,
		log:  log,
		done: closed,
		snap: Snapshot{Status: StatusLoading, Posts: []models.Post{}},
	}
}

// Activate resets the loader to loading and starts one fetch bound to ctx.
func (l *Loader) Activate(ctx context.Context) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done
	l.snap = Snapshot{Status: StatusLoading, Posts: []models.Post{}}
	l.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		posts, err := l.src.ListPosts(fetchCtx)

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen {
			l.log.Debug("discarding superseded catalog fetch", zap.Uint64("generation", gen))
			return
		}
		l.cancel = nil
		if err != nil {
			l.log.Error("catalog fetch failed", zap.Error(err))
			l.snap = Snapshot{Status: StatusError, Posts: []models.Post{}, Err: &FetchError{Err: err}}
			return
		}
		if posts == nil {
			posts = []models.Post{}
		}
		l.snap = Snapshot{Status: StatusReady, Posts: posts}
	}()
}

// Deactivate cancels the in-flight fetch, if any. Its result will not be applied.
func (l *Loader) Deactivate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Snapshot returns the current state. The returned slice is a copy.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.snap
	s.Posts = append([]models.Post{}, l.snap.Posts...)
	return s
}

// Wait blocks until the latest activation finishes or ctx is done.
func (l *Loader) Wait(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
		return l.Snapshot(), nil
	case <-ctx.Done():
		return l.Snapshot(), ctx.Err()
	}
}
