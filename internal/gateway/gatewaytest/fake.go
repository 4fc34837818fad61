// Package gatewaytest provides an in-memory Gateway for tests.
package gatewaytest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackkaliboi/DXN/internal/gateway"
	"github.com/hackkaliboi/DXN/internal/models"
)

// ShareRecord is one recorded share row.
type ShareRecord struct {
	PostID   string
	UserID   string
	Platform string
}

// Fake is an in-memory Gateway. Errs forces a method (by name) to fail;
// Calls records every invocation in order.
type Fake struct {
	mu sync.Mutex

	Posts    []models.PostModel
	Comments map[string][]models.CommentModel
	Profiles []models.ProfileModel
	Likes    map[string]map[string]bool
	Shares   []ShareRecord
	Views    map[string]int

	Errs  map[string]error
	Calls []string
}

func New() *Fake {
	return &Fake{
		Comments: map[string][]models.CommentModel{},
		Likes:    map[string]map[string]bool{},
		Views:    map[string]int{},
		Errs:     map[string]error{},
	}
}

func (f *Fake) record(method string) error {
	f.Calls = append(f.Calls, method)
	return f.Errs[method]
}

// CallCount returns how many times a method was invoked.
func (f *Fake) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *Fake) PublishedPosts(ctx context.Context) ([]models.PostModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PublishedPosts"); err != nil {
		return nil, err
	}
	out := make([]models.PostModel, 0, len(f.Posts))
	for _, p := range f.Posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *Fake) PostByID(ctx context.Context, id string) (*models.PostModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PostByID"); err != nil {
		return nil, err
	}
	for i := range f.Posts {
		if f.Posts[i].ID == id {
			p := f.Posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *Fake) IncrementViews(ctx context.Context, id string, newValue int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("IncrementViews"); err != nil {
		return err
	}
	if newValue < 0 {
		newValue = 0
	}
	f.Views[id] = newValue
	return nil
}

func (f *Fake) Categories(ctx context.Context) ([]models.CategoryModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Categories"); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *Fake) CommentsByPost(ctx context.Context, postID string) ([]models.CommentModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CommentsByPost"); err != nil {
		return nil, err
	}
	return append([]models.CommentModel(nil), f.Comments[postID]...), nil
}

func (f *Fake) ProfilesByUserIDs(ctx context.Context, ids []string) ([]models.ProfileModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ProfilesByUserIDs"); err != nil {
		return nil, err
	}
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.ProfileModel
	for _, p := range f.Profiles {
		if want[p.UserID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *Fake) InsertComment(ctx context.Context, postID, userID, body string) (*models.CommentModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("InsertComment"); err != nil {
		return nil, err
	}
	cm := models.CommentModel{PostID: postID, UserID: userID, Text: body}
	cm.ID = uuid.New().String()
	f.Comments[postID] = append([]models.CommentModel{cm}, f.Comments[postID]...)
	return &cm, nil
}

func (f *Fake) CountLikes(ctx context.Context, postID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CountLikes"); err != nil {
		return 0, err
	}
	return len(f.Likes[postID]), nil
}

func (f *Fake) CountComments(ctx context.Context, postID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CountComments"); err != nil {
		return 0, err
	}
	return len(f.Comments[postID]), nil
}

func (f *Fake) CountShares(ctx context.Context, postID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CountShares"); err != nil {
		return 0, err
	}
	n := 0
	for _, s := range f.Shares {
		if s.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (f *Fake) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("HasLiked"); err != nil {
		return false, err
	}
	return f.Likes[postID][userID], nil
}

func (f *Fake) InsertLike(ctx context.Context, userID, postID string) (gateway.LikeInsertOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("InsertLike"); err != nil {
		return gateway.LikeInserted, err
	}
	if f.Likes[postID] == nil {
		f.Likes[postID] = map[string]bool{}
	}
	if f.Likes[postID][userID] {
		return gateway.LikeAlreadyExists, nil
	}
	f.Likes[postID][userID] = true
	return gateway.LikeInserted, nil
}

func (f *Fake) DeleteLike(ctx context.Context, userID, postID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteLike"); err != nil {
		return err
	}
	delete(f.Likes[postID], userID)
	return nil
}

func (f *Fake) InsertShare(ctx context.Context, postID, userID, platform string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("InsertShare"); err != nil {
		return err
	}
	f.Shares = append(f.Shares, ShareRecord{PostID: postID, UserID: userID, Platform: platform})
	return nil
}

var _ gateway.Gateway = (*Fake)(nil)

// SeedLike marks a like as already present.
func (f *Fake) SeedLike(userID, postID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Likes[postID] == nil {
		f.Likes[postID] = map[string]bool{}
	}
	f.Likes[postID][userID] = true
}

// SeedComment appends a comment newest-first.
func (f *Fake) SeedComment(postID, userID, text string) models.CommentModel {
	f.mu.Lock()
	defer f.mu.Unlock()
	cm := models.CommentModel{PostID: postID, UserID: userID, Text: text}
	cm.ID = uuid.New().String()
	f.Comments[postID] = append([]models.CommentModel{cm}, f.Comments[postID]...)
	return cm
}
