package gateway

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/hackkaliboi/DXN/internal/models"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// Store is the GORM-backed Gateway.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) PublishedPosts(ctx context.Context) ([]models.PostModel, error) {
	var posts []models.PostModel
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Author").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *Store) PostByID(ctx context.Context, id string) (*models.PostModel, error) {
	var post models.PostModel
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Author").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *Store) IncrementViews(ctx context.Context, id string, newValue int) error {
	if newValue < 0 {
		newValue = 0
	}
	return s.db.WithContext(ctx).
		Model(&models.PostModel{}).
		Where("id = ?", id).
		UpdateColumn("views", newValue).Error
}

func (s *Store) Categories(ctx context.Context) ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	err := s.db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, err
}

func (s *Store) CommentsByPost(ctx context.Context, postID string) ([]models.CommentModel, error) {
	var comments []models.CommentModel
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (s *Store) ProfilesByUserIDs(ctx context.Context, ids []string) ([]models.ProfileModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var profiles []models.ProfileModel
	err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (s *Store) InsertComment(ctx context.Context, postID, userID, body string) (*models.CommentModel, error) {
	c := models.CommentModel{PostID: postID, UserID: userID, Text: body}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CountLikes(ctx context.Context, postID string) (int, error) {
	return s.countRows(ctx, &models.LikeModel{}, postID)
}

func (s *Store) CountComments(ctx context.Context, postID string) (int, error) {
	return s.countRows(ctx, &models.CommentModel{}, postID)
}

func (s *Store) CountShares(ctx context.Context, postID string) (int, error) {
	return s.countRows(ctx, &models.ShareModel{}, postID)
}

func (s *Store) countRows(ctx context.Context, model interface{}, postID string) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(model).Where("post_id = ?", postID).Count(&n).Error
	return int(n), err
}

func (s *Store) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error
	return n > 0, err
}

// InsertLike maps the duplicate-key conflict on (user_id, post_id) to
// LikeAlreadyExists so a concurrent like from another session converges
// instead of surfacing as a failure.
func (s *Store) InsertLike(ctx context.Context, userID, postID string) (LikeInsertOutcome, error) {
	like := models.LikeModel{UserID: userID, PostID: postID}
	err := s.db.WithContext(ctx).Create(&like).Error
	if err != nil {
		if isDuplicateEntry(err) {
			return LikeAlreadyExists, nil
		}
		return LikeInserted, err
	}
	return LikeInserted, nil
}

func (s *Store) DeleteLike(ctx context.Context, userID, postID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.LikeModel{}).Error
}

func (s *Store) InsertShare(ctx context.Context, postID, userID, platform string) error {
	share := models.ShareModel{PostID: postID, UserID: userID, Platform: platform}
	return s.db.WithContext(ctx).Create(&share).Error
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
