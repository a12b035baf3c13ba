// internal/app/features/students/routes.go
package students

import "github.com/go-chi/chi/v5"

// Routes mounts all Student routes under the base path
// (typically "/students" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST + search (?q=)
	r.Get("/", h.ServeList)
	r.Get("/export.xlsx", h.ServeExport)

	// CREATE (add modal on the list page)
	r.Post("/", h.HandleCreate)

	// EDIT
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	// DELETE (confirm modal on the list page)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
