// internal/app/features/courses/edit.go
package courses

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/formutil"
	"github.com/dalemusser/eduadmin/internal/app/system/inputval"
	"github.com/dalemusser/eduadmin/internal/app/system/limits"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/navigation"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit renders the edit form prefilled from the backend.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Course not found.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.API.Courses.Get(ctx, id)
	if err != nil {
		h.Log.Warn("get course failed", zap.Error(err), zap.Int("id", id))
		if errors.Is(err, backend.ErrNotFound) {
			uierrors.RenderNotFound(w, r, backend.Message(err), basePath)
			return
		}
		uierrors.RenderBackendUnavailable(w, r, backend.Message(err), basePath)
		return
	}

	form := courseForm{Name: c.Name}
	if c.Faculty != nil {
		form.FacultyID = c.Faculty.ID
	}
	templates.Render(w, r, "courses_edit", h.newEditData(ctx, r, id, form, &listview.Messages{}))
}

// HandleEdit sends the update and returns to the list with a flash alert.
// A blank faculty keeps the course's current faculty.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Course not found.", basePath)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "The form could not be read.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	form := readForm(r)
	msgs := &listview.Messages{}

	if form.Name == "" {
		data := h.newEditData(ctx, r, id, form, msgs)
		data.SetError(inputval.Validate(courseInput(form)).First())
		templates.Render(w, r, "courses_edit", data)
		return
	}

	err := h.API.Courses.Update(ctx, id, form.Name, form.FacultyID)
	h.Audit.Updated(ctx, r, audit.ResourceCourse, strconv.Itoa(id), err, map[string]string{
		"name":       form.Name,
		"faculty_id": strconv.Itoa(form.FacultyID),
	})
	if err != nil {
		h.Log.Warn("update course failed", zap.Error(err), zap.Int("id", id))
		msgs.Alert(backend.Message(err))
		templates.Render(w, r, "courses_edit", h.newEditData(ctx, r, id, form, msgs))
		return
	}

	if err := h.Flash.Add(w, r, msgUpdated); err != nil {
		h.Log.Warn("flash save failed", zap.Error(err))
	}
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.ForResource(basePath)), http.StatusSeeOther)
}

func (h *Handler) newEditData(ctx context.Context, r *http.Request, id int, form courseForm, msgs *listview.Messages) editData {
	data := editData{
		ID:        id,
		Form:      form,
		Faculties: h.facultyOptions(ctx, msgs),
	}
	formutil.SetBase(&data.Base, r, "Edit Course", basePath)
	data.AddAlerts(*msgs...)
	return data
}

func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}
