package admin

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/phoenixwrites/phoenix/models"
)

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// Editor is an in-memory list of posts with a single draft form.
// It is not connected to the post store: changes live only as long as the editor.
type Editor struct {
	mu    sync.Mutex
	posts []models.Post
	draft Draft
	now   func() time.Time
}

// NewEditor seeds the list with seed. now defaults to time.Now.
func NewEditor(seed []models.Post, now func() time.Time) *Editor {
	if now == nil {
		now = time.Now
	}
	return &Editor{
		posts: append([]models.Post{}, seed...),
		draft: EmptyDraft(),
		now:   now,
	}
}

// Posts returns a copy of the list in display order.
func (e *Editor) Posts() []models.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Post{}, e.posts...)
}

func (e *Editor) Get(id string) (models.Post, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return models.Post{}, ErrPostNotFound
	}
	return e.posts[i], nil
}

// Create validates d and prepends a new post with a time-derived id.
func (e *Editor) Create(d Draft) (models.Post, error) {
	if err := d.Validate(); err != nil {
		return models.Post{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.create(d), nil
}

func (e *Editor) create(d Draft) models.Post {
	now := e.now()
	p := models.Post{ID: e.nextID(now), CreatedAt: now, UpdatedAt: now}
	d.apply(&p)
	e.posts = append([]models.Post{p}, e.posts...)
	return p
}

// Update replaces the content fields of post id and bumps UpdatedAt.
// The id, CreatedAt and list position stay as they are.
func (e *Editor) Update(id string, d Draft) (models.Post, error) {
	if err := d.Validate(); err != nil {
		return models.Post{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.update(id, d)
}

func (e *Editor) update(id string, d Draft) (models.Post, error) {
	i := e.indexOf(id)
	if i < 0 {
		return models.Post{}, ErrPostNotFound
	}
	d.apply(&e.posts[i])
	e.posts[i].UpdatedAt = e.now()
	if e.draft.ID == id {
		e.draft = DraftOf(e.posts[i])
	}
	return e.posts[i], nil
}

// Delete removes post id once confirm approves it. There is no undo.
// confirm runs without the editor lock held, so it may call back into the editor.
func (e *Editor) Delete(id string, confirm func(models.Post) bool) error {
	p, err := e.Get(id)
	if err != nil {
		return err
	}
	if confirm == nil || !confirm(p) {
		return ErrDeleteNotConfirmed
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return ErrPostNotFound
	}
	e.posts = append(e.posts[:i:i], e.posts[i+1:]...)
	if e.draft.ID == id {
		e.draft = EmptyDraft()
	}
	return nil
}

// Edit loads post id into the draft and switches to edit mode.
func (e *Editor) Edit(id string) (Draft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return Draft{}, ErrPostNotFound
	}
	e.draft = DraftOf(e.posts[i])
	return e.draft, nil
}

// StartNew resets the draft to an empty create-mode form.
func (e *Editor) StartNew() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = EmptyDraft()
	return e.draft
}

// SetDraft replaces the form fields. The id of the draft being edited is kept.
func (e *Editor) SetDraft(d Draft) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d.ID = e.draft.ID
	e.draft = d
}

func (e *Editor) Draft() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Save commits the draft as a create or an update and then discards it.
// An invalid draft is kept so it can be corrected.
func (e *Editor) Save() (models.Post, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.draft
	if err := d.Validate(); err != nil {
		return models.Post{}, err
	}
	var (
		p   models.Post
		err error
	)
	if d.Mode() == ModeEdit {
		p, err = e.update(d.ID, d)
	} else {
		p = e.create(d)
	}
	if err != nil {
		return models.Post{}, err
	}
	e.draft = EmptyDraft()
	return p, nil
}

// Cancel discards the draft.
func (e *Editor) Cancel() {
	e.mu.Lock()
	e.draft = EmptyDraft()
	e.mu.Unlock()
}

func (e *Editor) indexOf(id string) int {
	for i, p := range e.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the clock in milliseconds, stepping forward on collision.
func (e *Editor) nextID(now time.Time) string {
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if e.indexOf(id) < 0 {
			return id
		}
		n++
	}
}
