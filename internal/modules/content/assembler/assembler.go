// Package assembler joins raw post, category and profile rows into the
// denormalized view model the presentation layer renders. Assemble is
// pure and total: missing relations resolve to fallback literals, never
// to empty output.
package assembler

import (
	"fmt"
	"strings"
	"time"

	"github.com/hackkaliboi/DXN/internal/models"
	"github.com/hackkaliboi/DXN/internal/modules/processing/markdown"
)

const (
	FallbackCategory = "Uncategorized"
	FallbackAuthor   = "Anonymous"

	wordsPerMinute = 200

	dateLayout  = "January 2, 2006"
	monthLayout = "January 2006"
)

// ViewModel is the display-ready shape of a post.
type ViewModel struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Text       string    `json:"text"`
	CoverImage string    `json:"cover_image"`
	Category   string    `json:"category"`
	Author     string    `json:"author"`
	Date       string    `json:"date"`
	MonthLabel string    `json:"month_label"`
	ReadTime   string    `json:"read_time"`
	Views      int       `json:"views"`
	Tags       []string  `json:"tags"`
	Featured   bool      `json:"featured"`
	Created    time.Time `json:"created"`
}

// Assemble merges a post with its optionally resolved category and
// author profile. Either relation may be nil.
func Assemble(post models.PostModel, category *models.CategoryModel, profile *models.ProfileModel) ViewModel {
	categoryName := FallbackCategory
	if category != nil && strings.TrimSpace(category.Name) != "" {
		categoryName = category.Name
	}

	authorName := FallbackAuthor
	if name := profile.Name(); strings.TrimSpace(name) != "" {
		authorName = name
	}

	views := post.Views
	if views < 0 {
		views = 0
	}

	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	return ViewModel{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Text:       post.Text,
		CoverImage: post.CoverImage,
		Category:   categoryName,
		Author:     authorName,
		Date:       post.CreatedAt.Format(dateLayout),
		MonthLabel: post.CreatedAt.Format(monthLayout),
		ReadTime:   fmt.Sprintf("%d min read", ReadingMinutes(post.Text)),
		Views:      views,
		Tags:       tags,
		Featured:   post.Featured,
		Created:    post.CreatedAt,
	}
}

// AssembleAll maps posts with their preloaded relations.
func AssembleAll(posts []models.PostModel) []ViewModel {
	out := make([]ViewModel, len(posts))
	for i, p := range posts {
		out[i] = Assemble(p, p.Category, p.Author)
	}
	return out
}

// ReadingMinutes computes reading time at 200 words per minute, rounded
// up, never below 1.
func ReadingMinutes(text string) int {
	words := markdown.WordCount(text)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
