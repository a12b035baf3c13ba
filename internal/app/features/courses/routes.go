// internal/app/features/courses/routes.go
package courses

import "github.com/go-chi/chi/v5"

// Routes mounts all Course routes under the base path
// (typically "/courses" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
