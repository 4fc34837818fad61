// Package comment loads and renders the discussion thread of a single
// post. Comments and author profiles live in separate tables with no
// enforced relational link, so the thread is assembled client-side by a
// two-step fetch joined in memory.
package comment

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/hackkaliboi/DXN/internal/gateway"
	"github.com/hackkaliboi/DXN/internal/models"
	"github.com/hackkaliboi/DXN/internal/modules/content/assembler"
	"github.com/hackkaliboi/DXN/internal/pkg/objectid"
	"github.com/hackkaliboi/DXN/internal/viewer"
)

// ErrEmptyBody rejects a submission whose text is empty or whitespace.
// The check runs locally; no write reaches the store.
var ErrEmptyBody = errors.New("comment text must not be empty")

// ThreadState is the lifecycle of one thread load.
type ThreadState int

const (
	StateIdle ThreadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s ThreadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Entry is one comment paired with its author's profile. Profile is nil
// when no profile row matches the comment's user id; the comment is
// still rendered, with the anonymous fallback name.
type Entry struct {
	Comment models.CommentModel
	Profile *models.ProfileModel
}

// AuthorName returns the display name for the entry, falling back to
// the anonymous label when no profile or name exists.
func (e Entry) AuthorName() string {
	if name := e.Profile.Name(); name != "" {
		return name
	}
	return assembler.FallbackAuthor
}

// Loader creates threads bound to the gateway.
type Loader struct {
	gw gateway.Gateway
}

func NewLoader(gw gateway.Gateway) *Loader {
	return &Loader{gw: gw}
}

// Thread builds a thread scoped to one post. A malformed id fails here,
// before any gateway call.
func (l *Loader) Thread(postID string) (*Thread, error) {
	if err := objectid.Validate(postID); err != nil {
		return nil, err
	}
	return &Thread{gw: l.gw, postID: postID}, nil
}

// Thread holds the load state of one post's discussion. Each Load bumps
// a generation counter; a load that finishes after a newer one started
// is stale and its result is discarded, so a slow first response can
// never clobber a fresh reload.
type Thread struct {
	gw     gateway.Gateway
	postID string

	mu      sync.Mutex
	gen     uint64
	state   ThreadState
	entries []Entry
	err     error
}

// State returns the current lifecycle state.
func (t *Thread) State() ThreadState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Entries returns the loaded thread, newest first.
func (t *Thread) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries
}

// Err returns the failure of the last load, if any.
func (t *Thread) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Load fetches comments, then the profiles of their distinct authors,
// and joins the two in memory. Either fetch failing moves the thread to
// StateFailed with an empty entry list.
func (t *Thread) Load(ctx context.Context) error {
	gen := t.begin()

	comments, err := t.gw.CommentsByPost(ctx, t.postID)
	if err != nil {
		return t.fail(gen, err)
	}

	var profiles []models.ProfileModel
	if ids := distinctUserIDs(comments); len(ids) > 0 {
		profiles, err = t.gw.ProfilesByUserIDs(ctx, ids)
		if err != nil {
			return t.fail(gen, err)
		}
	}

	return t.complete(gen, joinProfiles(comments, profiles))
}

// Submit validates and persists a new comment, then reloads the whole
// thread so ordering and profile joins stay authoritative.
func (t *Thread) Submit(ctx context.Context, who viewer.Identity, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyBody
	}
	if !who.Resolved() {
		return viewer.ErrAuthRequired
	}
	if _, err := t.gw.InsertComment(ctx, t.postID, who.ID, strings.TrimSpace(text)); err != nil {
		return err
	}
	return t.Load(ctx)
}

func (t *Thread) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.state = StateLoading
	return t.gen
}

func (t *Thread) fail(gen uint64, err error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return err
	}
	t.state = StateFailed
	t.entries = nil
	t.err = err
	return err
}

func (t *Thread) complete(gen uint64, entries []Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return nil
	}
	t.state = StateLoaded
	t.entries = entries
	t.err = nil
	return nil
}

func distinctUserIDs(comments []models.CommentModel) []string {
	seen := make(map[string]struct{}, len(comments))
	ids := make([]string, 0, len(comments))
	for _, cm := range comments {
		if _, ok := seen[cm.UserID]; ok {
			continue
		}
		seen[cm.UserID] = struct{}{}
		ids = append(ids, cm.UserID)
	}
	return ids
}

// joinProfiles left-joins comments with profiles on user id. A comment
// whose author has no profile row keeps a nil Profile and stays in the
// thread.
func joinProfiles(comments []models.CommentModel, profiles []models.ProfileModel) []Entry {
	byUser := make(map[string]*models.ProfileModel, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserID] = &profiles[i]
	}
	entries := make([]Entry, 0, len(comments))
	for _, cm := range comments {
		entries = append(entries, Entry{Comment: cm, Profile: byUser[cm.UserID]})
	}
	return entries
}
