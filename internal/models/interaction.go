package models

// LikeModel marks that a user likes a post. Existence of the row is the
// signal: a like is an insert, an unlike is a delete. The composite
// unique index makes a repeated like a duplicate-key conflict rather
// than a second row.
type LikeModel struct {
	Base
	UserID string `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID string `json:"post_id" gorm:"not null;uniqueIndex:idx_likes_user_post;index"`
}

func (LikeModel) TableName() string { return "likes" }

// ShareModel records a single share action. Append-only: repeated
// shares by the same user are all kept.
type ShareModel struct {
	Base
	UserID   string `json:"user_id"  gorm:"not null;index"`
	PostID   string `json:"post_id"  gorm:"not null;index"`
	Platform string `json:"platform" gorm:"not null"`
}

func (ShareModel) TableName() string { return "shares" }
