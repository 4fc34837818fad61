package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"plain token", "abc123", "abc123"},
		{"bearer prefix", "Bearer abc123", "abc123"},
		{"bearer case-insensitive", "bEaReR abc123", "abc123"},
		{"padded", "  abc123  ", "abc123"},
		{"bearer with padding", "  Bearer   abc123 ", "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeToken(tt.raw))
		})
	}
}
