// Package objectid validates the canonical opaque-identifier shape used
// for every entity id. Identifiers carry no semantic structure; the
// shape check exists so a malformed id fails fast locally instead of
// issuing a doomed query.
package objectid

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrMalformed wraps the offending value for user-facing messages.
type ErrMalformed struct {
	Value string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed identifier: %q", e.Value)
}

// Validate reports whether id matches the canonical shape
// (8-4-4-4-12 hex). Returns *ErrMalformed otherwise.
func Validate(id string) error {
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return &ErrMalformed{Value: id}
	}
	return nil
}

// IsValid is a convenience boolean form of Validate.
func IsValid(id string) bool {
	return Validate(id) == nil
}
