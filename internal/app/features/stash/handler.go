// Package stash implements the save-for-later list. The list lives
// entirely in a signed session cookie, so there is no account and no
// server-side state per visitor.
package stash

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	"github.com/stashdir/stashd/internal/app/features/shared/views"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/app/system/slugify"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
	"github.com/stashdir/stashd/internal/domain/models"
)

// The cookie store gob-encodes session values; the slug list type must
// be registered before the first encode.
func init() {
	gob.Register([]string{})
}

const (
	sessionName = "stashd_stash"
	sessionKey  = "slugs"

	// maxStashed bounds the cookie payload.
	maxStashed = 100
)

// Handler owns the stash endpoints.
type Handler struct {
	Resources *resourcestore.Store
	Sessions  sessions.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a stash Handler.
func NewHandler(res *resourcestore.Store, store sessions.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Resources: res, Sessions: store, Log: logger, ErrLog: errLog}
}

type listResponse struct {
	Items []views.Resource `json:"items"`
	Count int              `json:"count"`
}

type toggleResponse struct {
	Slug    string `json:"slug"`
	Stashed bool   `json:"stashed"`
	Count   int    `json:"count"`
}

// ServeList handles GET /api/stash: the visitor's saved resources in the
// order they were stashed. Slugs that no longer resolve to a published
// resource are dropped from the cookie as a side effect.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	sess, slugs := h.load(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items := make([]views.Resource, 0, len(slugs))
	kept := make([]string, 0, len(slugs))
	var derived map[string]models.Resource
	for _, slug := range slugs {
		res, err := h.Resources.GetBySlug(ctx, slug)
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Resources without an explicit slug are stashed under their
			// title-derived public slug, same as the catalog detail route.
			if derived == nil {
				derived, err = h.derivedSlugs(ctx)
				if err != nil {
					h.ErrLog.LogServerError(w, r, "load stash failed", err, "A database error occurred.")
					return
				}
			}
			fallback, ok := derived[slug]
			if !ok {
				continue
			}
			res = fallback
		} else if err != nil {
			h.ErrLog.LogServerError(w, r, "load stash failed", err, "A database error occurred.")
			return
		}
		items = append(items, views.Of(res))
		kept = append(kept, slug)
	}

	if len(kept) != len(slugs) {
		h.save(w, r, sess, kept)
	}

	writeJSON(w, listResponse{Items: items, Count: len(items)})
}

// derivedSlugs indexes every published resource by its resolved public
// slug, covering resources that have no explicit slug field.
func (h *Handler) derivedSlugs(ctx context.Context) (map[string]models.Resource, error) {
	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]models.Resource, len(all))
	for _, res := range all {
		idx[slugify.Resolve(res.Slug, res.Title)] = res
	}
	return idx, nil
}

// ServeToggle handles POST /api/stash/{slug}: adds the slug if absent,
// removes it if present.
func (h *Handler) ServeToggle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugify.Valid(slug) {
		h.ErrLog.BadRequest(w, "Invalid resource slug.")
		return
	}

	sess, slugs := h.load(r)

	kept := make([]string, 0, len(slugs)+1)
	removed := false
	for _, s := range slugs {
		if s == slug {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	if !removed {
		if len(kept) >= maxStashed {
			h.ErrLog.BadRequest(w, "Stash is full.")
			return
		}
		kept = append(kept, slug)
	}

	if !h.save(w, r, sess, kept) {
		return
	}
	writeJSON(w, toggleResponse{Slug: slug, Stashed: !removed, Count: len(kept)})
}

// ServeClear handles DELETE /api/stash.
func (h *Handler) ServeClear(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.load(r)
	if !h.save(w, r, sess, nil) {
		return
	}
	writeJSON(w, listResponse{Items: []views.Resource{}, Count: 0})
}

// load reads the visitor's stash from the session cookie. A missing,
// expired, or tampered cookie yields a fresh empty stash rather than an
// error.
func (h *Handler) load(r *http.Request) (*sessions.Session, []string) {
	sess, err := h.Sessions.Get(r, sessionName)
	if err != nil {
		h.Log.Debug("stash cookie reset", zap.Error(err))
	}
	raw, ok := sess.Values[sessionKey].([]string)
	if !ok {
		return sess, nil
	}
	return sess, raw
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, sess *sessions.Session, slugs []string) bool {
	if len(slugs) == 0 {
		delete(sess.Values, sessionKey)
	} else {
		sess.Values[sessionKey] = slugs
	}
	if err := sess.Save(r, w); err != nil {
		h.ErrLog.LogServerError(w, r, "save stash cookie failed", err, "Could not update your stash.")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
