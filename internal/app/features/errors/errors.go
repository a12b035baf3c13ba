// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
}

// Handler is the errors feature handler.
// It only renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the "page not found" page.
// Used as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "", "/")
}

// MethodNotAllowed renders a bad-request page for unsupported methods.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderStatus(w, r, http.StatusMethodNotAllowed, "Method not allowed", "This action is not available here.", "/")
}
