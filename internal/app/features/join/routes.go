package join

import "github.com/go-chi/chi/v5"

// Routes returns the join subrouter, mounted under /join.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSubmit)
	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}/status", h.HandleUpdateStatus)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
