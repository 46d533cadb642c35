// Package slugify derives URL-safe slugs from titles and resolves the
// public slug for resources and collections.
package slugify

import (
	"regexp"
	"strings"
)

// Fallback is used when slugifying strips a title down to nothing.
const Fallback = "resource"

var (
	slugOK      = regexp.MustCompile(`^[a-z0-9-]+$`)
	nonSlugChar = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns  = regexp.MustCompile(`-+`)
)

// Slugify converts text to a URL-safe slug: lowercase ASCII letters,
// digits, and hyphens only. Whitespace becomes hyphens, everything else is
// stripped, and runs of hyphens collapse. An empty result falls back to
// the literal "resource" so a slug is never empty.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Join(strings.Fields(s), "-")
	s = nonSlugChar.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return Fallback
	}
	return s
}

// Valid reports whether s is already a URL-safe slug.
func Valid(s string) bool {
	return s != "" && slugOK.MatchString(s)
}

// Resolve returns the public slug for an entity: the explicit slug when it
// is URL-safe, otherwise one derived from the title.
func Resolve(slug, title string) string {
	if Valid(slug) {
		return slug
	}
	return Slugify(title)
}
