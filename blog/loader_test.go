package blog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenixwrites/phoenix/models"
)

type stubSource struct {
	posts []models.Post
	err   error
	calls atomic.Int32
}

func (s *stubSource) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.calls.Add(1)
	return s.posts, s.err
}

// gatedSource blocks each call until released or cancelled.
type gatedSource struct {
	results chan []models.Post
	calls   atomic.Int32
	started chan struct{}
}

func newGatedSource() *gatedSource {
	return &gatedSource{results: make(chan []models.Post), started: make(chan struct{}, 8)}
}

func (s *gatedSource) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.calls.Add(1)
	s.started <- struct{}{}
	select {
	case p := <-s.results:
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func waitCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLoader_Ready(t *testing.T) {
	src := &stubSource{posts: samplePosts()}
	l := NewLoader(src, nil)
	assert.Equal(t, StatusLoading, l.Snapshot().Status)

	l.Activate(context.Background())
	snap, err := l.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, StatusReady, snap.Status)
	assert.Len(t, snap.Posts, 4)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestLoader_ReadyEmpty(t *testing.T) {
	l := NewLoader(&stubSource{}, nil)
	l.Activate(context.Background())
	snap, err := l.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, StatusReady, snap.Status)
	assert.NotNil(t, snap.Posts)
	assert.Empty(t, snap.Posts)
}

func TestLoader_ErrorIsTerminalUntilReactivated(t *testing.T) {
	cause := errors.New("connection refused")
	src := &stubSource{err: cause}
	l := NewLoader(src, nil)
	l.Activate(context.Background())
	snap, err := l.Wait(waitCtx(t))
	require.NoError(t, err)

	assert.Equal(t, StatusError, snap.Status)
	assert.Empty(t, snap.Posts)
	var fe *FetchError
	require.ErrorAs(t, snap.Err, &fe)
	assert.ErrorIs(t, snap.Err, cause)

	// no retry happens on its own
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), src.calls.Load())

	src.err = nil
	src.posts = samplePosts()[:1]
	l.Activate(context.Background())
	snap, err = l.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestLoader_DeactivateDiscardsResult(t *testing.T) {
	src := newGatedSource()
	l := NewLoader(src, nil)
	l.Activate(context.Background())
	<-src.started

	l.Deactivate()
	snap, err := l.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, StatusLoading, snap.Status)
	assert.Empty(t, snap.Posts)
}

func TestLoader_SupersededFetchNeverOverwrites(t *testing.T) {
	src := &slowThenFast{
		first:        samplePosts()[:1],
		second:       samplePosts()[1:],
		firstStarted: make(chan struct{}),
		releaseFirst: make(chan struct{}),
		firstDone:    make(chan struct{}),
	}
	l := NewLoader(src, nil)

	l.Activate(context.Background())
	<-src.firstStarted
	l.Activate(context.Background())
	snap, err := l.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4"}, ids(snap.Posts))

	// let the stale call complete; state must not change
	close(src.releaseFirst)
	<-src.firstDone
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []string{"2", "3", "4"}, ids(l.Snapshot().Posts))
}

type slowThenFast struct {
	first, second []models.Post
	calls         atomic.Int32
	firstStarted  chan struct{}
	releaseFirst  chan struct{}
	firstDone     chan struct{}
}

func (s *slowThenFast) ListPosts(ctx context.Context) ([]models.Post, error) {
	if s.calls.Add(1) == 1 {
		close(s.firstStarted)
		// ignores cancellation to model a store that returns late anyway
		<-s.releaseFirst
		defer close(s.firstDone)
		return s.first, nil
	}
	return s.second, nil
}

func TestLoader_WaitHonoursContext(t *testing.T) {
	src := newGatedSource()
	l := NewLoader(src, nil)
	l.Activate(context.Background())
	<-src.started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	snap, err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusLoading, snap.Status)
	l.Deactivate()
}

func TestLoader_ParentCancellation(t *testing.T) {
	src := newGatedSource()
	l := NewLoader(src, nil)
	ctx, cancel := context.WithCancel(context.Background())
	l.Activate(ctx)
	<-src.started
	cancel()

	snap, err := l.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, StatusError, snap.Status)
	assert.ErrorIs(t, snap.Err, context.Canceled)
}
