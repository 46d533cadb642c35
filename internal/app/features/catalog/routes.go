package catalog

import "github.com/go-chi/chi/v5"

// Routes mounts the catalog endpoints under the caller's base path
// (typically "/api/resources" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeDetail)
	return r
}
