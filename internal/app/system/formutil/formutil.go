// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation or the backend rejects it, the form
// is re-rendered with the values the user entered, the error message, and any
// dropdown data it needs.
//
// Example usage:
//
//	type editData struct {
//		formutil.Base
//		Name    string
//		Cohorts []cohortOption
//	}
//
//	data := editData{Name: name}
//	formutil.SetBase(&data.Base, r, "Edit Student", "/students")
//	data.SetError("Email already exist in database")
//	templates.Render(w, r, "students_edit", data)
package formutil

import (
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
)

// Base contains common fields for form pages.
type Base struct {
	viewdata.BaseVM
	Error string
}

// SetBase populates the common Base fields from the request.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(r, title, backDefault)
}

// SetError sets the error message shown above the form. Markup is stripped.
func (b *Base) SetError(msg string) {
	b.Error = htmlsanitize.PlainText(msg)
}
