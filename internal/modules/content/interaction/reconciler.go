// Package interaction owns the mutable engagement triad of a single
// post: like count, comment count, share count and whether the current
// viewer has liked it. Local state is mutated optimistically and
// reconciled against the store through the gateway; no state is shared
// across posts or across reconcilers of the same post.
package interaction

import (
	"context"

	"github.com/hackkaliboi/DXN/internal/gateway"
	"github.com/hackkaliboi/DXN/internal/pkg/objectid"
	"github.com/hackkaliboi/DXN/internal/viewer"
)

// Counts is the authoritative engagement snapshot for one post.
type Counts struct {
	Likes          int  `json:"likes"`
	Comments       int  `json:"comments"`
	Shares         int  `json:"shares"`
	ViewerHasLiked bool `json:"viewer_has_liked"`
}

// ToggleResult reports the converged like state after a toggle.
type ToggleResult struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// Service creates per-post reconcilers.
type Service struct {
	gw      gateway.Gateway
	siteURL string
}

func NewService(gw gateway.Gateway, siteURL string) *Service {
	return &Service{gw: gw, siteURL: siteURL}
}

// ForPost builds a reconciler scoped to one post. A malformed id fails
// here, before any gateway call.
func (s *Service) ForPost(postID string) (*Reconciler, error) {
	if err := objectid.Validate(postID); err != nil {
		return nil, err
	}
	return &Reconciler{gw: s.gw, siteURL: s.siteURL, postID: postID}, nil
}

// Reconciler holds the view-scoped engagement state of one post.
// Counts start at zero and are refreshed by Load; mutating operations
// adjust them optimistically.
type Reconciler struct {
	gw      gateway.Gateway
	siteURL string
	postID  string
	counts  Counts
}

// Counts returns the current local snapshot.
func (r *Reconciler) Counts() Counts { return r.counts }

// Load fetches authoritative counts. Failure is soft: each count is
// fetched independently, a failing fetch leaves that value at zero, and
// the first error is returned alongside a still-usable snapshot.
func (r *Reconciler) Load(ctx context.Context, who viewer.Identity) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	var err error
	r.counts = Counts{}
	r.counts.Likes, err = r.gw.CountLikes(ctx, r.postID)
	keep(err)
	r.counts.Comments, err = r.gw.CountComments(ctx, r.postID)
	keep(err)
	r.counts.Shares, err = r.gw.CountShares(ctx, r.postID)
	keep(err)

	if who.Resolved() {
		r.counts.ViewerHasLiked, err = r.gw.HasLiked(ctx, who.ID, r.postID)
		keep(err)
	}
	return firstErr
}

// ToggleLike flips the viewer's like. Without a resolved identity it
// returns viewer.ErrAuthRequired and issues no write. A duplicate-key
// conflict on insert (the same viewer liked concurrently elsewhere)
// converges to liked without a second increment. The local count never
// drops below zero.
func (r *Reconciler) ToggleLike(ctx context.Context, who viewer.Identity) (ToggleResult, error) {
	if !who.Resolved() {
		return ToggleResult{}, viewer.ErrAuthRequired
	}

	if r.counts.ViewerHasLiked {
		if err := r.gw.DeleteLike(ctx, who.ID, r.postID); err != nil {
			return ToggleResult{Liked: true, Count: r.counts.Likes}, err
		}
		r.counts.ViewerHasLiked = false
		if r.counts.Likes > 0 {
			r.counts.Likes--
		}
		return ToggleResult{Liked: false, Count: r.counts.Likes}, nil
	}

	outcome, err := r.gw.InsertLike(ctx, who.ID, r.postID)
	if err != nil {
		return ToggleResult{Liked: false, Count: r.counts.Likes}, err
	}
	r.counts.ViewerHasLiked = true
	if outcome == gateway.LikeInserted {
		r.counts.Likes++
	}
	return ToggleResult{Liked: true, Count: r.counts.Likes}, nil
}

// RecordShare appends a share row and returns the side-effect
// instruction for the caller to execute. The reconciler never touches a
// clipboard or opens anything itself.
func (r *Reconciler) RecordShare(ctx context.Context, who viewer.Identity, platform string) (ShareResult, error) {
	if !who.Resolved() {
		return ShareResult{}, viewer.ErrAuthRequired
	}

	if err := r.gw.InsertShare(ctx, r.postID, who.ID, platform); err != nil {
		return ShareResult{Count: r.counts.Shares}, err
	}
	r.counts.Shares++

	return ShareResult{
		Count:  r.counts.Shares,
		Action: shareAction(platform, r.postURL()),
	}, nil
}

func (r *Reconciler) postURL() string {
	return r.siteURL + "/post/" + r.postID
}
