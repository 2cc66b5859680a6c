package tickets

import "github.com/go-chi/chi/v5"

// Register wires the ticket endpoints onto the root router. These paths
// predate the resource-style routes and are kept flat for existing
// clients.
func Register(r chi.Router, h *Handler) {
	r.Post("/verify-ticket", h.HandleVerify)
	r.Post("/import/excel", h.HandleImport)
	r.Get("/sheet-data", h.HandleSheetData)
}
