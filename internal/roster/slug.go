package roster

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9 ]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Slugify derives a vendor slug from a display name: lowercase, drop
// anything outside [a-z0-9 ], collapse whitespace, spaces to hyphens.
// "Jane's Pies" and "Janes Pies" both become "janes-pies".
func Slugify(name string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(name), "")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	return strings.ReplaceAll(s, " ", "-")
}

// Collision is a slug shared by more than one vendor.
type Collision struct {
	Slug  string
	Names []string
}
