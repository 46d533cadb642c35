// Package categories serves the category enumeration with live resource
// counts, backing the filter bar and the category index page.
package categories

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/app/system/taxonomy"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// Handler owns the category endpoints.
type Handler struct {
	Resources *resourcestore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a categories Handler.
func NewHandler(res *resourcestore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Resources: res, Log: logger, ErrLog: errLog}
}

type categoryView struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type listResponse struct {
	Categories []categoryView `json:"categories"`
	Total      int            `json:"total"`
}

// ServeList handles GET /api/categories. Categories keep their canonical
// order; counts cover published resources only.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load resources failed", err, "A database error occurred.")
		return
	}

	counts := make(map[string]int, len(taxonomy.Categories))
	for _, res := range all {
		counts[res.Category]++
	}

	resp := listResponse{Total: len(all)}
	for _, c := range taxonomy.Categories {
		resp.Categories = append(resp.Categories, categoryView{
			Value: c.Value,
			Label: c.Label,
			Count: counts[c.Value],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
