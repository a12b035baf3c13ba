// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderNotFound shows a friendly "not found" page with status 404.
// An empty msg uses a generic message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The page you asked for does not exist."
	}
	renderStatus(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly "bad request" page with status 400.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The request could not be understood."
	}
	renderStatus(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderBackendUnavailable shows the page used when the backend cannot be
// reached at all (as opposed to rejecting a request).
func RenderBackendUnavailable(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The backend service is not responding. Please try again later."
	}
	renderStatus(w, r, http.StatusBadGateway, "Service unavailable", msg, backURL)
}

func renderStatus(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backURL),
		Status:  status,
		Message: msg,
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
