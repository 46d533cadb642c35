// Package submit accepts public resource submissions. Submissions are
// validated, sanitized, and stored pending review; they never reach the
// catalog without a curator republishing them.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dalemusser/waffle/pantry/urlutil"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	submissionstore "github.com/stashdir/stashd/internal/app/store/submissions"
	"github.com/stashdir/stashd/internal/app/system/htmlsanitize"
	"github.com/stashdir/stashd/internal/app/system/normalize"
	"github.com/stashdir/stashd/internal/app/system/ratelimit"
	"github.com/stashdir/stashd/internal/app/system/slugify"
	"github.com/stashdir/stashd/internal/app/system/taxonomy"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
	"github.com/stashdir/stashd/internal/domain/models"
)

const (
	titleMin = 2
	titleMax = 120
	descMin  = 10
	descMax  = 260
	maxTags  = 10
)

// Handler owns the submission endpoints.
type Handler struct {
	Submissions *submissionstore.Store
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
}

// NewHandler constructs a submit Handler.
func NewHandler(subs *submissionstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Submissions: subs, Log: logger, ErrLog: errLog}
}

type request struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type response struct {
	Ref    string `json:"ref"`
	Status string `json:"status"`
}

type statusResponse struct {
	Ref       string `json:"ref"`
	Status    string `json:"status"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

// ServeSubmit handles POST /api/submit.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}

	sub, msg := buildSubmission(req)
	if msg != "" {
		h.ErrLog.BadRequest(w, msg)
		return
	}
	sub.Ref = uuid.NewString()
	sub.SubmitterIP = ratelimit.ClientIP(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Submissions.Create(ctx, sub)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create submission failed", err, "Could not save your submission.")
		return
	}

	h.Log.Info("submission received",
		zap.String("ref", created.Ref),
		zap.String("category", created.Category),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(response{Ref: created.Ref, Status: created.Status})
}

// ServeStatus handles GET /api/submit/{ref}: lets a submitter check where
// their submission stands using the reference code they were given.
func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	if _, err := uuid.Parse(ref); err != nil {
		h.ErrLog.BadRequest(w, "Invalid reference code.")
		return
	}

	// Single-document read.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sub, err := h.Submissions.GetByRef(ctx, ref)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.ErrLog.NotFound(w, "Submission not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load submission failed", err, "A database error occurred.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(statusResponse{
		Ref:       sub.Ref,
		Status:    sub.Status,
		Title:     sub.Title,
		CreatedAt: sub.CreatedAt.UTC().Format("2006-01-02"),
	})
}

// buildSubmission validates and sanitizes the request into a Submission.
// A non-empty message means rejection; the message is safe to show the
// submitter.
func buildSubmission(req request) (models.Submission, string) {
	title := normalize.Title(req.Title)
	if n := len([]rune(title)); n < titleMin || n > titleMax {
		return models.Submission{}, "Title must be between 2 and 120 characters."
	}

	if !urlutil.IsValidAbsHTTPURL(req.URL) {
		return models.Submission{}, "URL must be an absolute http(s) URL."
	}

	desc := htmlsanitize.StripTags(req.Description)
	if n := len([]rune(desc)); n < descMin || n > descMax {
		return models.Submission{}, "Description must be between 10 and 260 characters."
	}

	if !taxonomy.ValidCategory(req.Category) {
		return models.Submission{}, "Unknown category."
	}

	slug := req.Slug
	if slug != "" && !slugify.Valid(slug) {
		slug = slugify.Slugify(title)
	}
	if slug == "" {
		slug = slugify.Slugify(title)
	}

	tags := normalize.Tags(req.Tags)
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	return models.Submission{
		Title:       title,
		Slug:        slug,
		URL:         req.URL,
		Description: desc,
		Category:    req.Category,
		Tags:        tags,
	}, ""
}
