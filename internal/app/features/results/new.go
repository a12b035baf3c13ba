// internal/app/features/results/new.go
package results

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

// HandleCreate records a grade for a student in a course.
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
	page := h.resultsPage(0, false, msgs)

	if res := inputval.Validate(resultInput(form)); res.HasErrors() {
		if err := page.Load(ctx); err != nil {
			h.Log.Warn("load results failed", zap.Error(err))
		}
		data := h.newListData(ctx, r, page, "", msgs)
		data.ShowAdd = true
		data.AddError = res.First()
		data.Form = form
		h.renderList(w, r, data)
		return
	}

	err := page.Mutate(ctx, func(ctx context.Context) error {
		return h.API.Results.Create(ctx, form.key(), form.grade())
	}, msgCreated)
	h.Audit.Created(ctx, r, audit.ResourceResult, targetID(form.StudentID, form.CourseID), err, map[string]string{
		"grade": form.Grade,
	})

	if err != nil {
		h.Log.Warn("create result failed", zap.Error(err),
			zap.Int("student_id", form.StudentID), zap.Int("course_id", form.CourseID))
		if loadErr := page.Load(ctx); loadErr != nil {
			h.Log.Warn("load results failed", zap.Error(loadErr))
		}
		data := h.newListData(ctx, r, page, "", msgs)
		data.Form = form
		h.renderList(w, r, data)
		return
	}

	h.renderList(w, r, h.newListData(ctx, r, page, "", msgs))
}

func readForm(r *http.Request) resultForm {
	sid, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("studentId")))
	cid, _ := strconv.Atoi(strings.TrimSpace(r.PostFormValue("courseId")))
	return resultForm{
		StudentID: sid,
		CourseID:  cid,
		Grade:     strings.TrimSpace(r.PostFormValue("grade")),
	}
}

// targetID is the audit target of a result, "student/course".
func targetID(studentID, courseID int) string {
	return strconv.Itoa(studentID) + "/" + strconv.Itoa(courseID)
}
