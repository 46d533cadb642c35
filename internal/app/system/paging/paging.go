// Package paging implements 1-based offset paging over the in-memory
// filtered lists the catalog pipeline produces, plus the display-range
// arithmetic listing responses report.
package paging

import (
	"net/http"
	"strconv"
)

// PageSize is the default number of items per listing page.
const PageSize = 24

// ParseStart extracts the 1-based "start" query parameter, defaulting to 1
// when absent or invalid.
func ParseStart(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Page is one window into a larger list.
type Page[T any] struct {
	Items   []T
	HasPrev bool
	HasNext bool
}

// Slice returns the window of items beginning at the 1-based start index.
// A start past the end yields an empty page.
func Slice[T any](items []T, start, size int) Page[T] {
	if size < 1 {
		size = PageSize
	}
	if start < 1 {
		start = 1
	}
	lo := start - 1
	if lo > len(items) {
		lo = len(items)
	}
	hi := lo + size
	if hi > len(items) {
		hi = len(items)
	}
	return Page[T]{
		Items:   items[lo:hi],
		HasPrev: lo > 0,
		HasNext: hi < len(items),
	}
}

// Range holds the human-facing "showing X–Y of Z" values for a page.
type Range struct {
	Start     int // 1-based first index shown (0 when empty)
	End       int // 1-based last index shown (0 when empty)
	PrevStart int // start parameter for the previous page
	NextStart int // start parameter for the next page
}

// ComputeRange calculates display range values for a page beginning at
// start that shows shown items.
func ComputeRange(start, shown, size int) Range {
	if size < 1 {
		size = PageSize
	}
	if shown == 0 {
		return Range{PrevStart: 1, NextStart: 1}
	}
	prev := start - size
	if prev < 1 {
		prev = 1
	}
	return Range{
		Start:     start,
		End:       start + shown - 1,
		PrevStart: prev,
		NextStart: start + shown,
	}
}
