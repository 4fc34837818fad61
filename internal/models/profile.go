package models

// ProfileModel is the public face of an account: display name, bio and
// avatar are all optional. One profile owns zero or more posts and
// comments.
type ProfileModel struct {
	Base
	UserID      string  `json:"user_id"      gorm:"uniqueIndex;not null"`
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"          gorm:"type:text"`
	AvatarURL   *string `json:"avatar_url"`

	Posts []PostModel `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
}

func (ProfileModel) TableName() string { return "profiles" }

// Name returns the display name or an empty string when unset.
func (p *ProfileModel) Name() string {
	if p == nil || p.DisplayName == nil {
		return ""
	}
	return *p.DisplayName
}
