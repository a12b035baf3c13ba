package errors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
)

func render(t *testing.T, fn func(w http.ResponseWriter, r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/students/9/edit", nil)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Logf("recovered from panic (expected - template not initialized): %v", r)
			}
		}()
		fn(rec, req)
	}()
	return rec
}

func TestRenderStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(w http.ResponseWriter, r *http.Request)
		want int
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			uierrors.RenderNotFound(w, r, "Student with id 9 was not found", "/students")
		}, http.StatusNotFound},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			uierrors.RenderBadRequest(w, r, "The form could not be read.", "/students")
		}, http.StatusBadRequest},
		{"backend unavailable", func(w http.ResponseWriter, r *http.Request) {
			uierrors.RenderBackendUnavailable(w, r, "connection refused", "/students")
		}, http.StatusBadGateway},
		{"router not found", uierrors.NewHandler().NotFound, http.StatusNotFound},
		{"method not allowed", uierrors.NewHandler().MethodNotAllowed, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := render(t, tt.fn); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
