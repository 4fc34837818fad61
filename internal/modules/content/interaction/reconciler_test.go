package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackkaliboi/DXN/internal/gateway/gatewaytest"
	"github.com/hackkaliboi/DXN/internal/pkg/objectid"
	"github.com/hackkaliboi/DXN/internal/viewer"
)

const (
	postID = "11111111-2222-3333-4444-555555555555"
	userID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
)

func newReconciler(t *testing.T, fake *gatewaytest.Fake) *Reconciler {
	t.Helper()
	rec, err := NewService(fake, "https://blog.example.com").ForPost(postID)
	require.NoError(t, err)
	return rec
}

func TestForPostRejectsMalformedID(t *testing.T) {
	fake := gatewaytest.New()
	svc := NewService(fake, "https://blog.example.com")

	for _, id := range []string{"", "abc", "123", "not-a-uuid-at-all"} {
		rec, err := svc.ForPost(id)
		assert.Nil(t, rec)
		var malformed *objectid.ErrMalformed
		assert.ErrorAs(t, err, &malformed)
	}
	// no query reaches the gateway for a malformed id
	assert.Empty(t, fake.Calls)
}

func TestLoadFetchesCounts(t *testing.T) {
	fake := gatewaytest.New()
	fake.SeedLike(userID, postID)
	fake.SeedComment(postID, userID, "first")
	rec := newReconciler(t, fake)

	err := rec.Load(context.Background(), viewer.Identity{ID: userID})
	require.NoError(t, err)

	counts := rec.Counts()
	assert.Equal(t, 1, counts.Likes)
	assert.Equal(t, 1, counts.Comments)
	assert.Equal(t, 0, counts.Shares)
	assert.True(t, counts.ViewerHasLiked)
}

func TestLoadAnonymousSkipsHasLiked(t *testing.T) {
	fake := gatewaytest.New()
	rec := newReconciler(t, fake)

	require.NoError(t, rec.Load(context.Background(), viewer.Identity{}))
	assert.Equal(t, 0, fake.CallCount("HasLiked"))
	assert.False(t, rec.Counts().ViewerHasLiked)
}

func TestLoadSoftFailureKeepsZeroes(t *testing.T) {
	fake := gatewaytest.New()
	boom := errors.New("store unavailable")
	fake.Errs["CountLikes"] = boom
	fake.SeedComment(postID, userID, "still counted")
	rec := newReconciler(t, fake)

	err := rec.Load(context.Background(), viewer.Identity{})
	assert.ErrorIs(t, err, boom)

	// the failing counter stays zero, the others still load
	counts := rec.Counts()
	assert.Equal(t, 0, counts.Likes)
	assert.Equal(t, 1, counts.Comments)
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	fake := gatewaytest.New()
	rec := newReconciler(t, fake)

	_, err := rec.ToggleLike(context.Background(), viewer.Identity{})
	assert.ErrorIs(t, err, viewer.ErrAuthRequired)
	assert.Equal(t, 0, fake.CallCount("InsertLike"))
	assert.Equal(t, 0, fake.CallCount("DeleteLike"))
}

func TestToggleLikeInsertsAndIncrements(t *testing.T) {
	fake := gatewaytest.New()
	rec := newReconciler(t, fake)
	who := viewer.Identity{ID: userID}
	require.NoError(t, rec.Load(context.Background(), who))

	result, err := rec.ToggleLike(context.Background(), who)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.Count)
}

func TestToggleLikeDuplicateConverges(t *testing.T) {
	fake := gatewaytest.New()
	rec := newReconciler(t, fake)
	who := viewer.Identity{ID: userID}
	require.NoError(t, rec.Load(context.Background(), who))

	// the same user liked from another session after our load
	fake.SeedLike(userID, postID)

	result, err := rec.ToggleLike(context.Background(), who)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	// converged to liked without a phantom increment
	assert.Equal(t, 0, result.Count)
}

func TestToggleLikeUnlikeClampsAtZero(t *testing.T) {
	fake := gatewaytest.New()
	fake.SeedLike(userID, postID)
	rec := newReconciler(t, fake)
	who := viewer.Identity{ID: userID}
	require.NoError(t, rec.Load(context.Background(), who))
	require.True(t, rec.Counts().ViewerHasLiked)

	result, err := rec.ToggleLike(context.Background(), who)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.Count)

	// a second unlike round-trip can never push the count negative
	fake.SeedLike(userID, postID)
	rec2 := newReconciler(t, fake)
	require.NoError(t, rec2.Load(context.Background(), who))
	res2, err := rec2.ToggleLike(context.Background(), who)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res2.Count, 0)
}

func TestRecordShareRequiresAuth(t *testing.T) {
	fake := gatewaytest.New()
	rec := newReconciler(t, fake)

	_, err := rec.RecordShare(context.Background(), viewer.Identity{}, PlatformTwitter)
	assert.ErrorIs(t, err, viewer.ErrAuthRequired)
	assert.Equal(t, 0, fake.CallCount("InsertShare"))
}

func TestRecordShareAppendsAndCounts(t *testing.T) {
	fake := gatewaytest.New()
	rec := newReconciler(t, fake)
	who := viewer.Identity{ID: userID}
	require.NoError(t, rec.Load(context.Background(), who))

	first, err := rec.RecordShare(context.Background(), who, PlatformCopyLink)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Count)

	second, err := rec.RecordShare(context.Background(), who, PlatformCopyLink)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Count)

	assert.Len(t, fake.Shares, 2)
	assert.Equal(t, PlatformCopyLink, fake.Shares[0].Platform)
}

func TestShareActions(t *testing.T) {
	fake := gatewaytest.New()
	rec := newReconciler(t, fake)
	who := viewer.Identity{ID: userID}

	tests := []struct {
		platform string
		wantKind ShareActionKind
		contains string
	}{
		{PlatformCopyLink, ShareCopyText, "https://blog.example.com/post/" + postID},
		{PlatformTwitter, ShareOpenURL, "twitter.com/intent/tweet"},
		{PlatformFacebook, ShareOpenURL, "facebook.com/sharer"},
		{PlatformLinkedIn, ShareOpenURL, "linkedin.com"},
		{"somewhere-else", ShareOpenURL, "https://blog.example.com/post/" + postID},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			result, err := rec.RecordShare(context.Background(), who, tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, result.Action.Kind)
			if tt.wantKind == ShareCopyText {
				assert.Contains(t, result.Action.Text, tt.contains)
			} else {
				assert.Contains(t, result.Action.URL, tt.contains)
			}
		})
	}
}
