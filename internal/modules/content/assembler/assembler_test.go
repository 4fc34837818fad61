package assembler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hackkaliboi/DXN/internal/models"
)

func strPtr(s string) *string { return &s }

func postAt(t time.Time) models.PostModel {
	p := models.PostModel{Title: "Hello", Slug: "hello", Text: "some words here"}
	p.ID = "11111111-2222-3333-4444-555555555555"
	p.CreatedAt = t
	return p
}

func TestAssembleFallbacks(t *testing.T) {
	created := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		category *models.CategoryModel
		profile  *models.ProfileModel
		wantCat  string
		wantAuth string
	}{
		{
			name:     "both missing",
			wantCat:  "Uncategorized",
			wantAuth: "Anonymous",
		},
		{
			name:     "both resolved",
			category: &models.CategoryModel{Name: "Engineering"},
			profile:  &models.ProfileModel{DisplayName: strPtr("Ada")},
			wantCat:  "Engineering",
			wantAuth: "Ada",
		},
		{
			name:     "blank category name falls back",
			category: &models.CategoryModel{Name: "   "},
			wantCat:  "Uncategorized",
			wantAuth: "Anonymous",
		},
		{
			name:     "profile without display name falls back",
			profile:  &models.ProfileModel{},
			wantCat:  "Uncategorized",
			wantAuth: "Anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := Assemble(postAt(created), tt.category, tt.profile)
			assert.Equal(t, tt.wantCat, vm.Category)
			assert.Equal(t, tt.wantAuth, vm.Author)
		})
	}
}

func TestAssembleDateFormats(t *testing.T) {
	created := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)
	vm := Assemble(postAt(created), nil, nil)

	assert.Equal(t, "March 7, 2025", vm.Date)
	assert.Equal(t, "March 2025", vm.MonthLabel)
}

func TestAssembleClampsNegativeViews(t *testing.T) {
	p := postAt(time.Now())
	p.Views = -3
	vm := Assemble(p, nil, nil)
	assert.Equal(t, 0, vm.Views)
}

func TestAssembleNilTagsBecomeEmpty(t *testing.T) {
	p := postAt(time.Now())
	p.Tags = nil
	vm := Assemble(p, nil, nil)
	assert.NotNil(t, vm.Tags)
	assert.Empty(t, vm.Tags)
}

func TestReadingMinutes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
	}{
		{"empty", "", 1},
		{"single word", "word", 1},
		{"exactly 200 words", strings.Repeat("w ", 200), 1},
		{"201 words rounds up", strings.Repeat("w ", 201), 2},
		{"markup does not count", "# Title\n\n**bold** _text_", 1},
		{"1000 words", strings.Repeat("w ", 1000), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingMinutes(tt.text))
		})
	}
}

func TestReadingMinutesMonotonic(t *testing.T) {
	prev := 0
	for _, n := range []int{1, 50, 200, 400, 900, 2000} {
		got := ReadingMinutes(strings.Repeat("w ", n))
		assert.GreaterOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 1)
		prev = got
	}
}

func TestReadTimeLabel(t *testing.T) {
	p := postAt(time.Now())
	p.Text = strings.Repeat("w ", 450)
	vm := Assemble(p, nil, nil)
	assert.Equal(t, "3 min read", vm.ReadTime)
}
