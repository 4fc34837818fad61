package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"already lowercase", "hello", "hello"},
		{"punctuation collapses", "Go 1.22: What's New?", "go-1-22-what-s-new"},
		{"leading and trailing trimmed", "  --Hello--  ", "hello"},
		{"consecutive separators collapse", "a   b___c", "a-b-c"},
		{"digits survive", "Top 10 Tips", "top-10-tips"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From(tt.title))
		})
	}
}
