// Package collections serves curated collection listings and detail
// pages with their member resources resolved in editorial order.
package collections

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	"github.com/stashdir/stashd/internal/app/features/shared/views"
	collectionstore "github.com/stashdir/stashd/internal/app/store/collections"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/app/system/slugify"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
	"github.com/stashdir/stashd/internal/domain/models"
)

// Handler owns the collection endpoints.
type Handler struct {
	Collections *collectionstore.Store
	Resources   *resourcestore.Store
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
}

// NewHandler constructs a collections Handler.
func NewHandler(cols *collectionstore.Store, res *resourcestore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Collections: cols, Resources: res, Log: logger, ErrLog: errLog}
}

type indexResponse struct {
	Collections []views.Collection `json:"collections"`
}

// ServeIndex handles GET /api/collections: every collection, newest
// first, without member resources (counts only).
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cols, err := h.Collections.All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load collections failed", err, "A database error occurred.")
		return
	}

	resp := indexResponse{Collections: make([]views.Collection, 0, len(cols))}
	for _, c := range cols {
		resp.Collections = append(resp.Collections, collectionView(c, nil))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// ServeDetail handles GET /api/collections/{slug} with member resources
// resolved in the collection's editorial order.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	col, ok := h.findBySlug(ctx, w, r, slug)
	if !ok {
		return
	}

	members, err := h.Resources.GetByIDs(ctx, col.ResourceIDs)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load collection members failed", err, "A database error occurred.")
		return
	}

	// GetByIDs returns documents in store order; restore editorial order.
	byID := make(map[primitive.ObjectID]models.Resource, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	ordered := make([]models.Resource, 0, len(col.ResourceIDs))
	for _, id := range col.ResourceIDs {
		if m, found := byID[id]; found {
			ordered = append(ordered, m)
		}
	}

	resp := collectionView(col, ordered)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) findBySlug(ctx context.Context, w http.ResponseWriter, r *http.Request, slug string) (models.Collection, bool) {
	col, err := h.Collections.GetBySlug(ctx, slug)
	if err == nil {
		return col, true
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.LogServerError(w, r, "collection lookup failed", err, "A database error occurred.")
		return models.Collection{}, false
	}

	all, err := h.Collections.All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "collection lookup failed", err, "A database error occurred.")
		return models.Collection{}, false
	}
	for _, candidate := range all {
		if slugify.Resolve(candidate.Slug, candidate.Title) == slug {
			return candidate, true
		}
	}

	h.ErrLog.NotFound(w, "Collection not found.")
	return models.Collection{}, false
}

func collectionView(c models.Collection, members []models.Resource) views.Collection {
	v := views.Collection{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		PublicSlug:  slugify.Resolve(c.Slug, c.Title),
		Description: c.Description,
		Featured:    c.Featured,
		Count:       len(c.ResourceIDs),
	}
	if !c.CreatedAt.IsZero() {
		v.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	if members != nil {
		v.Resources = views.OfAll(members)
		v.Count = len(members)
	}
	return v
}
