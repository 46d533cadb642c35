// Package normalize cleans up user-supplied scalar inputs before they are
// validated or stored.
package normalize

import (
	"regexp"
	"strings"
)

var emailish = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email trims and lowercases an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidEmail reports whether s looks like an email address. This is the
// same permissive shape check the submit form uses; deliverability is the
// mailing provider's problem.
func ValidEmail(s string) bool {
	return emailish.MatchString(s)
}

// Title trims surrounding whitespace, preserving inner case and spacing.
func Title(s string) string {
	return strings.TrimSpace(s)
}

// Tags drops empty and whitespace-only entries and trims the rest,
// preserving order.
func Tags(tags []string) []string {
	out := tags[:0:0]
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
