package recommend

import "github.com/go-chi/chi/v5"

// Routes returns the recommender router, mounted under /api/recommend.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
