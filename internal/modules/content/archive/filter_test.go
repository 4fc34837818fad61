package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackkaliboi/DXN/internal/modules/content/assembler"
)

func vm(id, title, excerpt, category, month string, tags ...string) assembler.ViewModel {
	return assembler.ViewModel{
		ID:         id,
		Title:      title,
		Excerpt:    excerpt,
		Category:   category,
		MonthLabel: month,
		Tags:       tags,
	}
}

func samplePosts() []assembler.ViewModel {
	return []assembler.ViewModel{
		vm("1", "Go Concurrency Patterns", "channels and goroutines", "Engineering", "March 2025", "go", "concurrency"),
		vm("2", "Sourdough Basics", "flour, water, salt", "Cooking", "March 2025", "baking"),
		vm("3", "Profiling Go Services", "pprof in production", "Engineering", "February 2025", "go", "performance"),
		vm("4", "Paris Travel Notes", "a week in the city", "Travel", "January 2025"),
	}
}

func TestFilterByQuery(t *testing.T) {
	posts := samplePosts()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query passes all", "", []string{"1", "2", "3", "4"}},
		{"title match", "sourdough", []string{"2"}},
		{"title match is case-insensitive", "SOURDOUGH", []string{"2"}},
		{"excerpt match", "pprof", []string{"3"}},
		{"tag match", "concurrency", []string{"1"}},
		{"substring across posts keeps order", "go", []string{"1", "3"}},
		{"no match", "kubernetes", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(posts, Criteria{Query: tt.query})
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	posts := samplePosts()

	got := Filter(posts, Criteria{Category: "Engineering"})
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	// category is an exact match, not a substring
	assert.Empty(t, Filter(posts, Criteria{Category: "Engineer"}))
}

func TestFilterCombinesCriteria(t *testing.T) {
	got := Filter(samplePosts(), Criteria{Query: "go", Category: "Engineering"})
	assert.Len(t, got, 2)

	got = Filter(samplePosts(), Criteria{Query: "sourdough", Category: "Engineering"})
	assert.Empty(t, got)
}

func TestGroupByMonth(t *testing.T) {
	buckets := GroupByMonth(samplePosts())

	assert.Len(t, buckets, 3)
	assert.Equal(t, "March 2025", buckets[0].Label)
	assert.Equal(t, "February 2025", buckets[1].Label)
	assert.Equal(t, "January 2025", buckets[2].Label)

	assert.Len(t, buckets[0].Posts, 2)
	assert.Equal(t, "1", buckets[0].Posts[0].ID)
	assert.Equal(t, "2", buckets[0].Posts[1].ID)
}

func TestGroupByMonthEmpty(t *testing.T) {
	assert.Empty(t, GroupByMonth(nil))
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	got := Categories(samplePosts())
	assert.Equal(t, []string{"Engineering", "Cooking", "Travel"}, got)
}
