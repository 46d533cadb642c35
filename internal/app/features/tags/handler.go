// Package tags serves the tag index and per-tag resource listings.
package tags

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	"github.com/stashdir/stashd/internal/app/features/shared/views"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// Handler owns the tag endpoints.
type Handler struct {
	Resources *resourcestore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a tags Handler.
func NewHandler(res *resourcestore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Resources: res, Log: logger, ErrLog: errLog}
}

type tagView struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type indexResponse struct {
	Tags []tagView `json:"tags"`
}

type tagResponse struct {
	Tag   string           `json:"tag"`
	Items []views.Resource `json:"items"`
	Total int              `json:"total"`
}

// ServeIndex handles GET /api/tags: every distinct tag across published
// resources with its usage count, in collated order. Tags that differ
// only in case are folded together under their first-seen spelling.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load resources failed", err, "A database error occurred.")
		return
	}

	counts := map[string]int{}
	display := map[string]string{}
	for _, res := range all {
		for _, tag := range res.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			if _, seen := display[key]; !seen {
				display[key] = tag
			}
			counts[key]++
		}
	}

	resp := indexResponse{Tags: make([]tagView, 0, len(counts))}
	for key, n := range counts {
		resp.Tags = append(resp.Tags, tagView{Tag: display[key], Count: n})
	}
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(resp.Tags, func(i, j int) bool {
		return c.CompareString(resp.Tags[i].Tag, resp.Tags[j].Tag) < 0
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// ServeTag handles GET /api/tags/{tag}: published resources carrying the
// tag, compared case-insensitively, newest first.
func (h *Handler) ServeTag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load resources failed", err, "A database error occurred.")
		return
	}

	resp := tagResponse{Tag: tag}
	for _, res := range all {
		for _, t := range res.Tags {
			if strings.EqualFold(t, tag) {
				resp.Items = append(resp.Items, views.Of(res))
				break
			}
		}
	}
	resp.Total = len(resp.Items)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
