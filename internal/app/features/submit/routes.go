package submit

import (
	"github.com/go-chi/chi/v5"

	"github.com/stashdir/stashd/internal/app/system/ratelimit"
)

// Routes returns the submission router, mounted under /api/submit. The
// POST is rate-limited per client IP; status lookups are not.
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.With(ratelimit.Middleware(limiter)).Post("/", h.ServeSubmit)
	r.Get("/{ref}", h.ServeStatus)
	return r
}
