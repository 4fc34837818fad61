package post

import (
	"github.com/hackkaliboi/DXN/internal/modules/content/assembler"
)

// CreatePostDTO is the request body for creating a post.
type CreatePostDTO struct {
	Title      string   `json:"title"      binding:"required"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Text       string   `json:"text"       binding:"required"`
	CoverImage string   `json:"cover_image"`
	CategoryID *string  `json:"category_id"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
	Featured   *bool    `json:"featured"`
}

// UpdatePostDTO is the request body for updating a post (all fields optional).
type UpdatePostDTO struct {
	Title      *string  `json:"title"`
	Slug       *string  `json:"slug"`
	Excerpt    *string  `json:"excerpt"`
	Text       *string  `json:"text"`
	CoverImage *string  `json:"cover_image"`
	CategoryID *string  `json:"category_id"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
	Featured   *bool    `json:"featured"`
}

// ListQuery holds query params for the public post list.
type ListQuery struct {
	Query    string `form:"query"`
	Category string `form:"category"`
}

// seoPayload carries the metadata a page head needs for one post.
type seoPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Canonical   string   `json:"canonical"`
	Image       string   `json:"image,omitempty"`
	Type        string   `json:"type"`
	Keywords    []string `json:"keywords,omitempty"`
}

func toSEO(vm assembler.ViewModel, siteURL string) seoPayload {
	return seoPayload{
		Title:       vm.Title,
		Description: vm.Excerpt,
		Canonical:   siteURL + "/post/" + vm.ID,
		Image:       vm.CoverImage,
		Type:        "article",
		Keywords:    vm.Tags,
	}
}
