package models

import "time"

// UserModel is an account that can sign in. Public attributes live on
// the linked profile.
type UserModel struct {
	Base
	Email         string     `json:"email" gorm:"uniqueIndex;not null"`
	Password      string     `json:"-"     gorm:"not null"`
	IsAdmin       bool       `json:"is_admin" gorm:"default:false"`
	LastLoginTime *time.Time `json:"last_login_time"`

	Profile *ProfileModel `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }
