package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"

	"github.com/stashdir/stashd/internal/app/features/shared/views"
	syscatalog "github.com/stashdir/stashd/internal/app/system/catalog"
	"github.com/stashdir/stashd/internal/app/system/paging"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// ServeList handles GET /api/resources.
//
// Query parameters: category (or "all"), q (substring search over title,
// description, tags), when ("all", "week", "month"), sort ("newest",
// "a-z"), start (1-based offset). Unknown parameter values fall back to
// their defaults rather than erroring.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := syscatalog.Query{
		Category: query.Get(r, "category"),
		Search:   query.Search(r, "q"),
		Window:   syscatalog.ParseWindow(query.Get(r, "when")),
		Sort:     syscatalog.ParseSort(query.Get(r, "sort")),
	}
	start := paging.ParseStart(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load resources failed", err, "A database error occurred.")
		return
	}

	filtered := syscatalog.Apply(all, q, time.Now())
	page := paging.Slice(filtered, start, paging.PageSize)
	rng := paging.ComputeRange(start, len(page.Items), paging.PageSize)

	resp := listResponse{
		Items:      views.OfAll(page.Items),
		Total:      len(filtered),
		Shown:      len(page.Items),
		HasPrev:    page.HasPrev,
		HasNext:    page.HasNext,
		RangeStart: rng.Start,
		RangeEnd:   rng.End,
		PrevStart:  rng.PrevStart,
		NextStart:  rng.NextStart,
		Category:   q.Category,
		Query:      q.Search,
		When:       string(q.Window),
		Sort:       string(q.Sort),
	}
	if resp.Category == "" {
		resp.Category = syscatalog.CategoryAll
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
