// Package viewer models the resolved identity of the current reader.
// Identity is always passed into the content core explicitly; no
// component reads ambient auth state.
package viewer

import "errors"

// ErrAuthRequired marks an action attempted without a resolved
// identity. It is an outcome surfaced as a sign-in prompt, not a system
// failure, and no remote write precedes it.
var ErrAuthRequired = errors.New("authentication required")

// Identity is the current reader. The zero value means anonymous.
type Identity struct {
	ID string
}

// Resolved reports whether an identity is present.
func (v Identity) Resolved() bool { return v.ID != "" }
