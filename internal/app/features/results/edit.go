// internal/app/features/results/edit.go
package results

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/formutil"
	"github.com/dalemusser/eduadmin/internal/app/system/inputval"
	"github.com/dalemusser/eduadmin/internal/app/system/limits"
	"github.com/dalemusser/eduadmin/internal/app/system/navigation"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit renders the grade form. The backend has no single-result read,
// so the result is looked up in the full list.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	k, ok := keyParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Result not found.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, found, err := h.find(ctx, k)
	if err != nil {
		h.Log.Warn("load results for edit failed", zap.Error(err))
		uierrors.RenderBackendUnavailable(w, r, backend.Message(err), basePath)
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "Result not found.", basePath)
		return
	}

	templates.Render(w, r, "results_edit", newEditData(r, res, strconv.Itoa(res.Grade)))
}

// HandleEdit changes the grade of one result.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	k, ok := keyParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Result not found.", basePath)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "The form could not be read.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	form := resultForm{StudentID: k.StudentID, CourseID: k.CourseID, Grade: strings.TrimSpace(r.PostFormValue("grade"))}
	res := models.Result{ID: k}
	if found, ok, err := h.find(ctx, k); err == nil && ok {
		res = found
	}

	if v := inputval.Validate(gradeInput{Grade: form.Grade}); v.HasErrors() {
		data := newEditData(r, res, form.Grade)
		data.SetError(v.First())
		templates.Render(w, r, "results_edit", data)
		return
	}

	err := h.API.Results.Update(ctx, k, form.grade())
	h.Audit.Updated(ctx, r, audit.ResourceResult, targetID(k.StudentID, k.CourseID), err, map[string]string{
		"grade": form.Grade,
	})
	if err != nil {
		h.Log.Warn("update result failed", zap.Error(err),
			zap.Int("student_id", k.StudentID), zap.Int("course_id", k.CourseID))
		data := newEditData(r, res, form.Grade)
		data.AddAlerts(backend.Message(err))
		templates.Render(w, r, "results_edit", data)
		return
	}

	if err := h.Flash.Add(w, r, msgUpdated); err != nil {
		h.Log.Warn("flash save failed", zap.Error(err))
	}
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.ForResource(basePath)), http.StatusSeeOther)
}

func (h *Handler) find(ctx context.Context, k models.ResultID) (models.Result, bool, error) {
	all, err := h.API.Results.List(ctx)
	if err != nil {
		return models.Result{}, false, err
	}
	for _, res := range all {
		if res.Key() == k {
			return res, true, nil
		}
	}
	return models.Result{}, false, nil
}

func newEditData(r *http.Request, res models.Result, grade string) editData {
	data := editData{
		Key:     res.Key(),
		Student: res.StudentName(),
		Course:  res.CourseName(),
		Grade:   grade,
	}
	formutil.SetBase(&data.Base, r, "Edit Result", basePath)
	return data
}

func keyParam(r *http.Request) (models.ResultID, bool) {
	sid, err1 := strconv.Atoi(chi.URLParam(r, "studentId"))
	cid, err2 := strconv.Atoi(chi.URLParam(r, "courseId"))
	if err1 != nil || err2 != nil || sid <= 0 || cid <= 0 {
		return models.ResultID{}, false
	}
	return models.ResultID{StudentID: sid, CourseID: cid}, true
}
