package collections

import "github.com/go-chi/chi/v5"

// Routes mounts the collection endpoints (typically under
// "/api/collections").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeIndex)
	r.Get("/{slug}", h.ServeDetail)
	return r
}
