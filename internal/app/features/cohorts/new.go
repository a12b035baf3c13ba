// internal/app/features/cohorts/new.go
package cohorts

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/inputval"
	"github.com/dalemusser/eduadmin/internal/app/system/limits"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate adds a cohort under the chosen faculty and re-renders the list.
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
	page := h.cohortsPage(msgs)

	if res := inputval.Validate(cohortInput(form)); res.HasErrors() {
		if err := page.Load(ctx); err != nil {
			h.Log.Warn("load cohorts failed", zap.Error(err))
		}
		data := h.newListData(ctx, r, page, "", msgs)
		data.ShowAdd = true
		data.AddError = res.First()
		data.Form = form
		h.renderList(w, r, data)
		return
	}

	err := page.Mutate(ctx, func(ctx context.Context) error {
		return h.API.Cohorts.Create(ctx, form.Name, form.FacultyID)
	}, msgCreated)
	h.Audit.Created(ctx, r, audit.ResourceCohort, "", err, map[string]string{
		"name":       form.Name,
		"faculty_id": strconv.Itoa(form.FacultyID),
	})

	if err != nil {
		h.Log.Warn("create cohort failed", zap.Error(err), zap.String("name", form.Name))
		if loadErr := page.Load(ctx); loadErr != nil {
			h.Log.Warn("load cohorts failed", zap.Error(loadErr))
		}
		data := h.newListData(ctx, r, page, "", msgs)
		data.Form = form
		h.renderList(w, r, data)
		return
	}

	h.renderList(w, r, h.newListData(ctx, r, page, "", msgs))
}

func readForm(r *http.Request) cohortForm {
	facultyID, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("facultyId")))
	return cohortForm{
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		FacultyID: facultyID,
	}
}
