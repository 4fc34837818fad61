// Package gateway defines the typed query contract the content core
// consumes, plus its GORM implementation. The interaction reconciler
// and the comment thread loader depend only on the Gateway interface so
// they can be exercised against an in-memory fake.
package gateway

import (
	"context"

	"github.com/hackkaliboi/DXN/internal/models"
)

// LikeInsertOutcome tags the result of InsertLike so callers can tell a
// fresh insert from a converged duplicate instead of the conflict being
// swallowed.
type LikeInsertOutcome int

const (
	LikeInserted LikeInsertOutcome = iota
	LikeAlreadyExists
)

// Gateway is the remote data contract (posts, categories, profiles,
// comments, likes, shares). Implementations return (nil, nil) for
// single-row lookups that find nothing.
type Gateway interface {
	// PublishedPosts returns reader-visible posts newest-first with
	// category and author resolved.
	PublishedPosts(ctx context.Context) ([]models.PostModel, error)
	PostByID(ctx context.Context, id string) (*models.PostModel, error)
	// IncrementViews writes an explicit new value. The read-then-write
	// pair is not atomic; concurrent readers can lose an increment.
	IncrementViews(ctx context.Context, id string, newValue int) error

	Categories(ctx context.Context) ([]models.CategoryModel, error)

	// CommentsByPost returns comments newest-first. Commenter profiles
	// are resolved by ProfilesByUserIDs, never via a relational join.
	CommentsByPost(ctx context.Context, postID string) ([]models.CommentModel, error)
	ProfilesByUserIDs(ctx context.Context, ids []string) ([]models.ProfileModel, error)
	InsertComment(ctx context.Context, postID, userID, body string) (*models.CommentModel, error)

	CountLikes(ctx context.Context, postID string) (int, error)
	CountComments(ctx context.Context, postID string) (int, error)
	CountShares(ctx context.Context, postID string) (int, error)
	HasLiked(ctx context.Context, userID, postID string) (bool, error)
	InsertLike(ctx context.Context, userID, postID string) (LikeInsertOutcome, error)
	DeleteLike(ctx context.Context, userID, postID string) error
	InsertShare(ctx context.Context, postID, userID, platform string) error
}
