// internal/app/features/results/delete.go
package results

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete removes one result and re-renders the list.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	k, ok := keyParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Result not found.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msgs := &listview.Messages{}
	page := h.resultsPage(0, false, msgs)

	err := page.Mutate(ctx, func(ctx context.Context) error {
		return h.API.Results.Delete(ctx, k)
	}, "")
	h.Audit.Deleted(ctx, r, audit.ResourceResult, targetID(k.StudentID, k.CourseID), err)

	if err != nil {
		h.Log.Warn("delete result failed", zap.Error(err),
			zap.Int("student_id", k.StudentID), zap.Int("course_id", k.CourseID))
		if loadErr := page.Load(ctx); loadErr != nil {
			h.Log.Warn("load results failed", zap.Error(loadErr))
		}
	}

	h.renderList(w, r, h.newListData(ctx, r, page, "", msgs))
}
