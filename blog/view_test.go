package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenixwrites/phoenix/models"
)

func TestViewer(t *testing.T) {
	v := NewViewer()
	assert.False(t, v.IsOpen())
	assert.Equal(t, NoSelection{}, v.Current())

	p1 := models.Post{ID: "1", Title: "one"}
	p2 := models.Post{ID: "2", Title: "two"}
	v.Open(p1)
	v.Open(p2)
	sel, ok := v.Current().(SelectedPost)
	require.True(t, ok)
	assert.Equal(t, "2", sel.Post.ID)

	v.Close()
	assert.False(t, v.IsOpen())
	assert.Equal(t, NoSelection{}, v.Current())
}

func TestView_ListingFollowsCriteria(t *testing.T) {
	v := NewView(&stubSource{posts: samplePosts()}, nil)
	v.Activate(context.Background())
	_, err := v.Wait(waitCtx(t))
	require.NoError(t, err)

	assert.Equal(t, 4, v.Listing().Total())

	v.SetSearch("RESUME")
	l := v.Listing()
	require.False(t, l.Empty())
	assert.Equal(t, "1", l.Featured.ID)
	assert.Equal(t, []string{"3"}, ids(l.Rest))

	v.SetCategory(models.CategoryCreative)
	assert.True(t, v.Listing().Empty())
	assert.Equal(t, Criteria{Search: "RESUME", Category: models.CategoryCreative}, v.Criteria())
}

func TestView_OpenPostAndDeactivate(t *testing.T) {
	v := NewView(&stubSource{posts: samplePosts()}, nil)
	v.Activate(context.Background())
	_, err := v.Wait(waitCtx(t))
	require.NoError(t, err)

	p, err := v.OpenPost("2")
	require.NoError(t, err)
	assert.Equal(t, "A Story", p.Title)
	assert.Equal(t, SelectedPost{Post: p}, v.Selection())

	_, err = v.OpenPost("missing")
	assert.ErrorIs(t, err, ErrNotInCatalog)
	// a failed open leaves the current selection alone
	assert.IsType(t, SelectedPost{}, v.Selection())

	v.ClosePost()
	assert.Equal(t, NoSelection{}, v.Selection())

	_, _ = v.OpenPost("1")
	v.Deactivate()
	assert.Equal(t, NoSelection{}, v.Selection())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "ready", StatusReady.String())
}
