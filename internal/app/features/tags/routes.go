package tags

import "github.com/go-chi/chi/v5"

// Routes mounts the tag endpoints (typically under "/api/tags").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeIndex)
	r.Get("/{tag}", h.ServeTag)
	return r
}
