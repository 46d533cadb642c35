// Package catalog narrows a resource list by category, free-text search,
// and recency window, then orders the result. It is the in-memory pipeline
// behind every listing endpoint.
//
// Apply is a pure function: it never mutates its input slice and is
// deterministic for a fixed input and clock reading, so it is safe to call
// concurrently from independent requests.
package catalog

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/stashdir/stashd/internal/domain/models"
)

// CategoryAll is the sentinel meaning "no category restriction".
const CategoryAll = "all"

// Window restricts results to resources created recently.
type Window string

// Recency windows, measured backward from the current instant.
const (
	WindowAll   Window = "all"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Sort selects the ordering of the filtered set.
type Sort string

// Sort modes.
const (
	SortNewest       Sort = "newest"
	SortAlphabetical Sort = "a-z"
)

// Query is one filter request against the catalog.
type Query struct {
	Category string // a category value, or "all"/"" for no restriction
	Search   string // free text, matched as a case-folded substring
	Window   Window
	Sort     Sort
}

// ParseWindow maps a query-string value to a Window; anything
// unrecognized means all time.
func ParseWindow(s string) Window {
	switch s {
	case string(WindowWeek):
		return WindowWeek
	case string(WindowMonth):
		return WindowMonth
	default:
		return WindowAll
	}
}

// ParseSort maps a query-string value to a Sort; anything unrecognized
// means newest first.
func ParseSort(s string) Sort {
	if s == string(SortAlphabetical) {
		return SortAlphabetical
	}
	return SortNewest
}

// Apply filters resources by q and returns a new, ordered slice.
//
// Filters are conjunctive and applied in order: category equality (unless
// the "all" sentinel), case-folded substring search over title then
// description then tags, then the recency window. A resource with no
// creation timestamp fails any active window. An empty result is valid.
func Apply(resources []models.Resource, q Query, now time.Time) []models.Resource {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if q.Category != "" && q.Category != CategoryAll && r.Category != q.Category {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if q.Window != "" && q.Window != WindowAll && !withinWindow(r.CreatedAt, q.Window, now) {
			continue
		}
		out = append(out, r)
	}

	sortResources(out, q.Sort)
	return out
}

// matchesSearch reports whether the folded query is a substring of the
// title, the description, or any tag. Checks run in that order; the first
// hit wins.
func matchesSearch(r models.Resource, search string) bool {
	if strings.Contains(strings.ToLower(r.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), search) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func withinWindow(created time.Time, w Window, now time.Time) bool {
	if created.IsZero() {
		return false
	}
	cutoff := 30 * 24 * time.Hour
	if w == WindowWeek {
		cutoff = 7 * 24 * time.Hour
	}
	return now.Sub(created) <= cutoff
}

func sortResources(rs []models.Resource, mode Sort) {
	if mode == SortAlphabetical {
		// Collators are not safe for concurrent use, so build one per call.
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(rs, func(i, j int) bool {
			return c.CompareString(rs[i].Title, rs[j].Title) < 0
		})
		return
	}
	// Newest first; the zero time is the earliest instant, so resources
	// without a timestamp sort last.
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}
