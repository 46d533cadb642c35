// Package feed serves the RSS 2.0 feed of newest published resources.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/app/system/slugify"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// Handler owns the feed endpoint.
type Handler struct {
	Resources *resourcestore.Store
	BaseURL   string
	SiteName  string
	MaxItems  int
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a feed Handler. baseURL has no trailing slash.
func NewHandler(res *resourcestore.Store, baseURL, siteName string, maxItems int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Resources: res,
		BaseURL:   baseURL,
		SiteName:  siteName,
		MaxItems:  maxItems,
		Log:       logger,
		ErrLog:    errLog,
	}
}

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []item `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
}

// Serve handles GET /feed.xml. Resources are already newest-first from
// the store; undated entries sort last and carry no pubDate.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load feed resources failed", err, "A database error occurred.")
		return
	}
	if len(all) > h.MaxItems {
		all = all[:h.MaxItems]
	}

	out := rss{
		Version: "2.0",
		Channel: channel{
			Title:       h.SiteName,
			Link:        h.BaseURL,
			Description: fmt.Sprintf("Latest resources on %s", h.SiteName),
			Items:       make([]item, 0, len(all)),
		},
	}
	for _, res := range all {
		link := fmt.Sprintf("%s/resources/%s", h.BaseURL, slugify.Resolve(res.Slug, res.Title))
		it := item{
			Title:       res.Title,
			Link:        link,
			GUID:        link,
			Description: res.Description,
			Category:    res.Category,
		}
		if !res.CreatedAt.IsZero() {
			it.PubDate = res.CreatedAt.UTC().Format(time.RFC1123Z)
		}
		out.Channel.Items = append(out.Channel.Items, it)
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		h.Log.Warn("encode feed failed", zap.Error(err))
	}
}
