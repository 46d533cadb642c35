package stash

import "github.com/go-chi/chi/v5"

// Routes returns the stash router, mounted under /api/stash.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Delete("/", h.ServeClear)
	r.Post("/{slug}", h.ServeToggle)
	return r
}
