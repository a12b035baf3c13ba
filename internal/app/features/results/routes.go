// internal/app/features/results/routes.go
package results

import "github.com/go-chi/chi/v5"

// Routes mounts the result routes. A result has no id of its own, so
// member routes are keyed by student and course.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST + search (?q=) + grade floor (?min=)
	r.Get("/", h.ServeList)
	r.Get("/export.xlsx", h.ServeExport)

	r.Post("/", h.HandleCreate)

	r.Get("/{studentId}/{courseId}/edit", h.ServeEdit)
	r.Post("/{studentId}/{courseId}/edit", h.HandleEdit)

	r.Post("/{studentId}/{courseId}/delete", h.HandleDelete)

	return r
}
