// Package sitemap serves the XML sitemap of public pages.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	collectionstore "github.com/stashdir/stashd/internal/app/store/collections"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/app/system/slugify"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// reservedSlugs are path segments of app routes that a resource slug must
// never shadow; resources whose resolved slug collides are left out of
// the sitemap (they remain reachable via the API).
var reservedSlugs = map[string]bool{
	"api":         true,
	"collections": true,
	"feed.xml":    true,
	"sitemap.xml": true,
	"submit":      true,
	"stash":       true,
	"recommend":   true,
	"health":      true,
}

// Handler owns the sitemap endpoint.
type Handler struct {
	Resources   *resourcestore.Store
	Collections *collectionstore.Store
	BaseURL     string
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
}

// NewHandler constructs a sitemap Handler. baseURL has no trailing slash.
func NewHandler(res *resourcestore.Store, cols *collectionstore.Store, baseURL string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Resources: res, Collections: cols, BaseURL: baseURL, Log: logger, ErrLog: errLog}
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []entry  `xml:"url"`
}

type entry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Serve handles GET /sitemap.xml.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resources, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load sitemap resources failed", err, "A database error occurred.")
		return
	}
	collections, err := h.Collections.All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load sitemap collections failed", err, "A database error occurred.")
		return
	}

	out := urlset{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []entry{
			{Loc: h.BaseURL},
			{Loc: h.BaseURL + "/collections"},
		},
	}
	for _, c := range collections {
		e := entry{Loc: fmt.Sprintf("%s/collections/%s", h.BaseURL, slugify.Resolve(c.Slug, c.Title))}
		if !c.CreatedAt.IsZero() {
			e.LastMod = c.CreatedAt.UTC().Format("2006-01-02")
		}
		out.URLs = append(out.URLs, e)
	}
	for _, res := range resources {
		slug := slugify.Resolve(res.Slug, res.Title)
		if reservedSlugs[slug] {
			continue
		}
		e := entry{Loc: fmt.Sprintf("%s/resources/%s", h.BaseURL, slug)}
		switch {
		case res.UpdatedAt != nil:
			e.LastMod = res.UpdatedAt.UTC().Format("2006-01-02")
		case !res.CreatedAt.IsZero():
			e.LastMod = res.CreatedAt.UTC().Format("2006-01-02")
		}
		out.URLs = append(out.URLs, e)
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		h.Log.Warn("encode sitemap failed", zap.Error(err))
	}
}
