// internal/app/features/students/edit.go
package students

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
		uierrors.RenderNotFound(w, r, "Student not found.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := h.API.Students.Get(ctx, id)
	if err != nil {
		h.Log.Warn("get student failed", zap.Error(err), zap.Int("id", id))
		if errors.Is(err, backend.ErrNotFound) {
			uierrors.RenderNotFound(w, r, backend.Message(err), basePath)
			return
		}
		uierrors.RenderBackendUnavailable(w, r, backend.Message(err), basePath)
		return
	}

	form := studentForm{
		Name:    st.Name,
		Email:   st.Email,
		Gender:  string(st.Gender),
		DOB:     st.DOB.String(),
		Address: st.Address,
	}
	if st.Cohort != nil {
		form.CohortID = st.Cohort.ID
	}

	msgs := &listview.Messages{}
	data := h.newEditData(ctx, r, id, form, msgs)
	templates.Render(w, r, "students_edit", data)
}

// HandleEdit sends the update and returns to the list.
//
// Blank fields are left out of the update so the backend keeps their current
// values. On success the "Update successfully" alert is carried to the list
// page through the flash cookie. On failure the form is shown again with the
// backend's message.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Student not found.", basePath)
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

	if res := inputval.Validate(form.editInput()); res.HasErrors() {
		data := h.newEditData(ctx, r, id, form, msgs)
		data.SetError(res.First())
		templates.Render(w, r, "students_edit", data)
		return
	}

	st := form.student()
	upd := backend.StudentUpdate{
		Name:     st.Name,
		Email:    st.Email,
		Gender:   st.Gender,
		DOB:      st.DOB,
		CohortID: form.CohortID,
	}
	err := h.API.Students.Update(ctx, id, upd)
	h.Audit.Updated(ctx, r, audit.ResourceStudent, strconv.Itoa(id), err, changed(upd))
	if err != nil {
		h.Log.Warn("update student failed", zap.Error(err), zap.Int("id", id))
		msgs.Alert(backend.Message(err))
		data := h.newEditData(ctx, r, id, form, msgs)
		templates.Render(w, r, "students_edit", data)
		return
	}

	if err := h.Flash.Add(w, r, msgUpdated); err != nil {
		h.Log.Warn("flash save failed", zap.Error(err))
	}
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.ForResource(basePath)), http.StatusSeeOther)
}

func (h *Handler) newEditData(ctx context.Context, r *http.Request, id int, form studentForm, msgs *listview.Messages) editData {
	data := editData{
		ID:      id,
		Form:    form,
		Cohorts: h.cohortOptions(ctx, msgs),
		Genders: genderOptions(),
	}
	formutil.SetBase(&data.Base, r, "Edit Student", basePath)
	data.AddAlerts(*msgs...)
	return data
}

// changed lists the fields sent in an update for the audit record.
func changed(u backend.StudentUpdate) map[string]string {
	out := map[string]string{}
	if u.Email != "" {
		out["email"] = u.Email
	}
	if u.CohortID != 0 {
		out["cohort_id"] = strconv.Itoa(u.CohortID)
	}
	return out
}

// idParam parses the {id} route segment.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

