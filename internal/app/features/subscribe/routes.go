package subscribe

import (
	"github.com/go-chi/chi/v5"

	"github.com/stashdir/stashd/internal/app/system/ratelimit"
)

// Routes returns the subscribe router, mounted under /api/subscribe.
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.With(ratelimit.Middleware(limiter)).Post("/", h.Serve)
	return r
}
