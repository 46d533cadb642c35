package feed

import "github.com/go-chi/chi/v5"

// Routes returns the feed router, mounted at /feed.xml.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
