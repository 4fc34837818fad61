package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackkaliboi/DXN/internal/gateway/gatewaytest"
	"github.com/hackkaliboi/DXN/internal/models"
	"github.com/hackkaliboi/DXN/internal/pkg/objectid"
	"github.com/hackkaliboi/DXN/internal/viewer"
)

const (
	postID  = "11111111-2222-3333-4444-555555555555"
	aliceID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	bobID   = "bbbbbbbb-cccc-dddd-eeee-ffffffffffff"
)

func strPtr(s string) *string { return &s }

func newThread(t *testing.T, fake *gatewaytest.Fake) *Thread {
	t.Helper()
	thread, err := NewLoader(fake).Thread(postID)
	require.NoError(t, err)
	return thread
}

func TestThreadRejectsMalformedID(t *testing.T) {
	fake := gatewaytest.New()
	loader := NewLoader(fake)

	thread, err := loader.Thread("not-a-uuid")
	assert.Nil(t, thread)
	var malformed *objectid.ErrMalformed
	assert.ErrorAs(t, err, &malformed)
	assert.Empty(t, fake.Calls)
}

func TestThreadStartsIdle(t *testing.T) {
	thread := newThread(t, gatewaytest.New())
	assert.Equal(t, StateIdle, thread.State())
	assert.Empty(t, thread.Entries())
}

func TestLoadJoinsProfiles(t *testing.T) {
	fake := gatewaytest.New()
	fake.SeedComment(postID, aliceID, "older")
	fake.SeedComment(postID, bobID, "newer")
	alice := models.ProfileModel{UserID: aliceID, DisplayName: strPtr("Alice")}
	fake.Profiles = append(fake.Profiles, alice)

	thread := newThread(t, fake)
	require.NoError(t, thread.Load(context.Background()))

	assert.Equal(t, StateLoaded, thread.State())
	entries := thread.Entries()
	require.Len(t, entries, 2)

	// newest first, straight from the gateway ordering
	assert.Equal(t, "newer", entries[0].Comment.Text)
	assert.Equal(t, "older", entries[1].Comment.Text)

	// bob has no profile row: comment kept, profile nil, fallback name
	assert.Nil(t, entries[0].Profile)
	assert.Equal(t, "Anonymous", entries[0].AuthorName())

	require.NotNil(t, entries[1].Profile)
	assert.Equal(t, "Alice", entries[1].AuthorName())
}

func TestLoadEmptyThreadSkipsProfileFetch(t *testing.T) {
	fake := gatewaytest.New()
	thread := newThread(t, fake)

	require.NoError(t, thread.Load(context.Background()))
	assert.Equal(t, StateLoaded, thread.State())
	assert.Empty(t, thread.Entries())
	assert.Equal(t, 0, fake.CallCount("ProfilesByUserIDs"))
}

func TestLoadFailureMovesToFailed(t *testing.T) {
	boom := errors.New("store unavailable")

	t.Run("comment fetch fails", func(t *testing.T) {
		fake := gatewaytest.New()
		fake.Errs["CommentsByPost"] = boom
		thread := newThread(t, fake)

		assert.ErrorIs(t, thread.Load(context.Background()), boom)
		assert.Equal(t, StateFailed, thread.State())
		assert.Empty(t, thread.Entries())
		assert.ErrorIs(t, thread.Err(), boom)
	})

	t.Run("profile fetch fails", func(t *testing.T) {
		fake := gatewaytest.New()
		fake.SeedComment(postID, aliceID, "hello")
		fake.Errs["ProfilesByUserIDs"] = boom
		thread := newThread(t, fake)

		assert.ErrorIs(t, thread.Load(context.Background()), boom)
		assert.Equal(t, StateFailed, thread.State())
		assert.Empty(t, thread.Entries())
	})
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	fake := gatewaytest.New()
	fake.SeedComment(postID, aliceID, "hello")
	thread := newThread(t, fake)

	// an old load that began before the current one finished last
	stale := thread.begin()
	require.NoError(t, thread.Load(context.Background()))
	require.Equal(t, StateLoaded, thread.State())

	// its late failure must not clobber the fresh result
	_ = thread.fail(stale, errors.New("slow response"))
	assert.Equal(t, StateLoaded, thread.State())
	assert.Len(t, thread.Entries(), 1)
	assert.NoError(t, thread.Err())

	// nor may a late success overwrite newer entries
	stale2 := thread.begin()
	require.NoError(t, thread.Load(context.Background()))
	require.NoError(t, thread.complete(stale2, nil))
	assert.Len(t, thread.Entries(), 1)
}

func TestSubmitRejectsEmptyBody(t *testing.T) {
	fake := gatewaytest.New()
	thread := newThread(t, fake)

	for _, text := range []string{"", "   ", "\n\t"} {
		err := thread.Submit(context.Background(), viewer.Identity{ID: aliceID}, text)
		assert.ErrorIs(t, err, ErrEmptyBody)
	}
	assert.Equal(t, 0, fake.CallCount("InsertComment"))
}

func TestSubmitRequiresAuth(t *testing.T) {
	fake := gatewaytest.New()
	thread := newThread(t, fake)

	err := thread.Submit(context.Background(), viewer.Identity{}, "hello there")
	assert.ErrorIs(t, err, viewer.ErrAuthRequired)
	assert.Equal(t, 0, fake.CallCount("InsertComment"))
}

func TestSubmitInsertsAndReloads(t *testing.T) {
	fake := gatewaytest.New()
	fake.SeedComment(postID, bobID, "existing")
	thread := newThread(t, fake)
	require.NoError(t, thread.Load(context.Background()))

	err := thread.Submit(context.Background(), viewer.Identity{ID: aliceID}, "  a fresh take  ")
	require.NoError(t, err)

	entries := thread.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a fresh take", entries[0].Comment.Text)
	assert.Equal(t, aliceID, entries[0].Comment.UserID)
	assert.Equal(t, StateLoaded, thread.State())
}
