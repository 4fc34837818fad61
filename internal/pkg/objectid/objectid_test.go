package objectid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"canonical uuid", "11111111-2222-3333-4444-555555555555", true},
		{"uppercase hex", "AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE", true},
		{"empty", "", false},
		{"too short", "1111-2222", false},
		{"no hyphens", "11111111222233334444555555555555", false},
		{"non-hex", "zzzzzzzz-2222-3333-4444-555555555555", false},
		{"trailing garbage", "11111111-2222-3333-4444-555555555555x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.ok {
				assert.NoError(t, err)
				assert.True(t, IsValid(tt.id))
				return
			}
			assert.False(t, IsValid(tt.id))
			var malformed *ErrMalformed
			assert.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.id, malformed.Value)
		})
	}
}
