// Package recommend serves the tech-stack recommender: scores the
// published catalog against the caller's selected industries, use cases,
// and pricing preference, and returns the ranked matches with their
// reasons.
package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	"github.com/stashdir/stashd/internal/app/features/shared/views"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/app/system/recommender"
	"github.com/stashdir/stashd/internal/app/system/taxonomy"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// defaultLimit caps a recommendation page unless the caller asks for
// fewer.
const defaultLimit = 24

// Handler owns the recommender endpoints.
type Handler struct {
	Resources *resourcestore.Store
	Log       *zap.Logger
	ErrLog    *uierrors.ErrorLogger
}

// NewHandler constructs a recommend Handler.
func NewHandler(res *resourcestore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Resources: res, Log: logger, ErrLog: errLog}
}

type scoredView struct {
	views.Resource

	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

type response struct {
	Items []scoredView `json:"items"`
	Total int          `json:"total"` // matches before truncation
	Shown int          `json:"shown"`

	// Selection echo and the canonical shareable query string.
	Industries []string `json:"industries"`
	UseCases   []string `json:"useCases"`
	Pricing    string   `json:"pricing"`
	ShareQuery string   `json:"shareQuery"`

	// The selectable facets, so a client can render the wizard without a
	// second request.
	Options optionsView `json:"options"`
}

type optionsView struct {
	Industries []taxonomy.Option `json:"industries"`
	UseCases   []taxonomy.Option `json:"useCases"`
	Pricing    []taxonomy.Option `json:"pricing"`
}

// Serve handles GET /api/recommend.
//
// Selection arrives in the shareable query-string format: industry and
// use as comma-separated lists, pricing as a scalar ("any" or absent for
// no constraint), limit to override the page cap. An empty selection is
// valid; matches then rest entirely on quality, adoption, and featured
// bonuses and may legitimately be empty.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	in := recommender.ParseInput(r.URL.Query())

	limit := defaultLimit
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 && n < defaultLimit {
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Resources.AllPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load resources failed", err, "A database error occurred.")
		return
	}

	scored := recommender.Score(all, in)

	shown := scored
	if len(shown) > limit {
		shown = shown[:limit]
	}

	resp := response{
		Items:      make([]scoredView, 0, len(shown)),
		Total:      len(scored),
		Shown:      len(shown),
		Industries: in.Industries,
		UseCases:   in.UseCases,
		Pricing:    in.Pricing,
		ShareQuery: in.QueryString(),
		Options: optionsView{
			Industries: taxonomy.Industries,
			UseCases:   taxonomy.UseCases,
			Pricing:    taxonomy.PricingOptions,
		},
	}
	if resp.Pricing == "" {
		resp.Pricing = taxonomy.PricingAny
	}
	if resp.Industries == nil {
		resp.Industries = []string{}
	}
	if resp.UseCases == nil {
		resp.UseCases = []string{}
	}
	for _, s := range shown {
		reasons := s.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		resp.Items = append(resp.Items, scoredView{
			Resource: views.Of(s.Resource),
			Score:    s.Score,
			Reasons:  reasons,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
