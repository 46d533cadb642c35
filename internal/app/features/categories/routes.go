package categories

import "github.com/go-chi/chi/v5"

// Routes mounts the category endpoints (typically under "/api/categories").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
