package models

// StringSlice is a []string that serializes as JSON in MySQL.
type StringSlice []string

// PostModel is a blog post.
type PostModel struct {
	Base
	Title      string         `json:"title"       gorm:"not null"`
	Slug       string         `json:"slug"        gorm:"uniqueIndex;not null"`
	Excerpt    string         `json:"excerpt"     gorm:"type:text"`
	Text       string         `json:"text"        gorm:"type:longtext"`
	CoverImage string         `json:"cover_image"`
	CategoryID *string        `json:"category_id" gorm:"index"`
	Category   *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	AuthorID   *string        `json:"author_id"   gorm:"index"`
	Author     *ProfileModel  `json:"author,omitempty"   gorm:"foreignKey:AuthorID"`
	Tags       StringSlice    `json:"tags"        gorm:"type:json;serializer:json"`
	Published  bool           `json:"published"   gorm:"default:false;index"`
	Featured   bool           `json:"featured"    gorm:"default:false"`
	Views      int            `json:"views"       gorm:"default:0"`
}

func (PostModel) TableName() string { return "posts" }
