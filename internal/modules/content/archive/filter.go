// Package archive filters, searches and groups assembled view models in
// memory. All functions are pure over their input slice.
package archive

import (
	"strings"

	"github.com/hackkaliboi/DXN/internal/modules/content/assembler"
)

// Criteria narrows a post list. Query matches title, excerpt and tags
// case-insensitively; Category is an exact match on the resolved
// category name. Empty fields pass everything through.
type Criteria struct {
	Query    string
	Category string
}

// Filter returns the posts matching all set criteria, preserving input
// order.
func Filter(posts []assembler.ViewModel, c Criteria) []assembler.ViewModel {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]assembler.ViewModel, 0, len(posts))
	for _, p := range posts {
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p assembler.ViewModel, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// MonthBucket groups the posts of one month label.
type MonthBucket struct {
	Label string                `json:"label"`
	Posts []assembler.ViewModel `json:"posts"`
}

// GroupByMonth buckets posts by their month label ("January 2006").
// Bucket order follows first appearance and intra-bucket order follows
// the input; no secondary sort is applied.
func GroupByMonth(posts []assembler.ViewModel) []MonthBucket {
	index := make(map[string]int, len(posts))
	buckets := make([]MonthBucket, 0)

	for _, p := range posts {
		i, ok := index[p.MonthLabel]
		if !ok {
			i = len(buckets)
			index[p.MonthLabel] = i
			buckets = append(buckets, MonthBucket{Label: p.MonthLabel})
		}
		buckets[i].Posts = append(buckets[i].Posts, p)
	}
	return buckets
}

// Categories returns the distinct category names in first-seen order,
// mirroring the category filter strip on the index page.
func Categories(posts []assembler.ViewModel) []string {
	seen := make(map[string]bool, len(posts))
	out := make([]string, 0)
	for _, p := range posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
