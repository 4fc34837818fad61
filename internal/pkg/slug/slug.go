// Package slug derives URL slugs from titles.
package slug

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// From lowercases the input, collapses runs of anything outside [a-z0-9]
// to a single hyphen and strips leading and trailing hyphens.
func From(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
