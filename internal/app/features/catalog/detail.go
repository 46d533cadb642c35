package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/stashdir/stashd/internal/app/features/shared/views"
	"github.com/stashdir/stashd/internal/app/system/slugify"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
	"github.com/stashdir/stashd/internal/domain/models"
)

// similarLimit caps the "similar resources" strip on a detail page.
const similarLimit = 6

// ServeDetail handles GET /api/resources/{slug}.
//
// Lookup tries the explicit slug field first, then falls back to scanning
// title-derived slugs, since not every resource has a slug set in the
// content store.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, ok := h.findBySlug(ctx, w, r, slug)
	if !ok {
		return
	}

	resp := detailResponse{Resource: views.Of(res)}

	// Same-category neighbors for internal linking. Failures here degrade
	// the page rather than breaking it.
	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.Log.Warn("load similar resources failed", zap.Error(err))
	} else {
		for _, other := range all {
			if other.Category == res.Category && other.ID != res.ID {
				resp.Similar = append(resp.Similar, views.Of(other))
				if len(resp.Similar) == similarLimit {
					break
				}
			}
		}
	}

	cols, err := h.Collections.ContainingResource(ctx, res.ID)
	if err != nil {
		h.Log.Warn("load containing collections failed", zap.Error(err))
	} else {
		for _, c := range cols {
			resp.Collections = append(resp.Collections, collectionRef{
				ID:    c.ID.Hex(),
				Title: c.Title,
				Slug:  slugify.Resolve(c.Slug, c.Title),
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// findBySlug resolves a public slug to a published resource, writing the
// error response itself when it cannot. The bool result reports success.
func (h *Handler) findBySlug(ctx context.Context, w http.ResponseWriter, r *http.Request, slug string) (models.Resource, bool) {
	res, err := h.Resources.GetBySlug(ctx, slug)
	if err == nil {
		return res, true
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.LogServerError(w, r, "resource lookup failed", err, "A database error occurred.")
		return models.Resource{}, false
	}

	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "resource lookup failed", err, "A database error occurred.")
		return models.Resource{}, false
	}
	for _, candidate := range all {
		if slugify.Resolve(candidate.Slug, candidate.Title) == slug {
			return candidate, true
		}
	}

	h.ErrLog.NotFound(w, "Resource not found.")
	return models.Resource{}, false
}
