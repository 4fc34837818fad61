package models

// CommentModel is a reader comment on a post. Comments are immutable
// after creation and are listed newest-first. The commenter profile is
// resolved by a separate query, never through a relational join.
type CommentModel struct {
	Base
	PostID string `json:"post_id" gorm:"not null;index"`
	UserID string `json:"user_id" gorm:"not null;index"`
	Text   string `json:"text"    gorm:"type:text;not null"`
}

func (CommentModel) TableName() string { return "comments" }
