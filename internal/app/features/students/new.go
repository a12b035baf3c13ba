// internal/app/features/students/new.go
package students

import (
	"context"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/inputval"
	"github.com/dalemusser/eduadmin/internal/app/system/limits"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate adds a student from the add modal and re-renders the list.
//
// On success the alert reads "Added student successfully" and the list is
// reloaded once. On failure the backend's message is alerted as-is and the
// entered values are kept for the next attempt.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "The form could not be read.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	form := readForm(r)
	msgs := &listview.Messages{}
	page := h.studentsPage(msgs)

	if res := inputval.Validate(form.input()); res.HasErrors() {
		if err := page.Load(ctx); err != nil {
			h.Log.Warn("load students failed", zap.Error(err))
		}
		data := h.newListData(ctx, r, page, "", msgs)
		data.ShowAdd = true
		data.AddError = res.First()
		data.Form = form
		h.renderList(w, r, data)
		return
	}

	st := form.student()
	err := page.Mutate(ctx, func(ctx context.Context) error {
		return h.API.Students.Create(ctx, st, form.CohortID)
	}, msgCreated)
	h.Audit.Created(ctx, r, audit.ResourceStudent, "", err, map[string]string{
		"email":     st.Email,
		"cohort_id": strconv.Itoa(form.CohortID),
	})

	if err != nil {
		h.Log.Warn("create student failed", zap.Error(err), zap.String("email", st.Email))
		if loadErr := page.Load(ctx); loadErr != nil {
			h.Log.Warn("load students failed", zap.Error(loadErr))
		}
		data := h.newListData(ctx, r, page, "", msgs)
		data.Form = form
		h.renderList(w, r, data)
		return
	}

	h.renderList(w, r, h.newListData(ctx, r, page, "", msgs))
}

// readForm reads the add/edit form fields.
func readForm(r *http.Request) studentForm {
	cohortID, _ := strconv.Atoi(trimmed(r.PostFormValue("cohortId")))
	return studentForm{
		Name:     trimmed(r.PostFormValue("name")),
		Email:    trimmed(r.PostFormValue("email")),
		Gender:   trimmed(r.PostFormValue("gender")),
		DOB:      trimmed(r.PostFormValue("dob")),
		Address:  trimmed(r.PostFormValue("address")),
		CohortID: cohortID,
	}
}

// student converts a validated form into the record the backend expects.
func (f studentForm) student() models.Student {
	g, _ := models.ParseGender(f.Gender)
	dob, _ := models.ParseDate(f.DOB)
	return models.Student{
		Name:    f.Name,
		Email:   f.Email,
		Gender:  g,
		Address: f.Address,
		DOB:     dob,
	}
}
