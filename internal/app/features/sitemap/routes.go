package sitemap

import "github.com/go-chi/chi/v5"

// Routes returns the sitemap router, mounted at /sitemap.xml.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
