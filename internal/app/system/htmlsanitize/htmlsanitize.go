// Package htmlsanitize strips unsafe markup from user-submitted content
// before it is stored. Submitted descriptions and long-form bodies may
// carry basic formatting; scripts, event handlers, and javascript: URLs
// are removed.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Sanitize returns s with disallowed markup removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// StripTags removes all markup, leaving text content only. Used for
// fields that must never contain HTML, like titles.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return bluemonday.StrictPolicy().Sanitize(s)
}
