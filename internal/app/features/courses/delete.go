// internal/app/features/courses/delete.go
package courses

import (
	"context"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete removes a course and re-renders the list.
// Success reloads the list without an alert; failure alerts the backend's
// message and leaves the list as it was.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Course not found.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msgs := &listview.Messages{}
	page := h.coursesPage(msgs)

	err := page.Mutate(ctx, func(ctx context.Context) error {
		return h.API.Courses.Delete(ctx, id)
	}, "")
	h.Audit.Deleted(ctx, r, audit.ResourceCourse, strconv.Itoa(id), err)

	if err != nil {
		h.Log.Warn("delete course failed", zap.Error(err), zap.Int("id", id))
		if loadErr := page.Load(ctx); loadErr != nil {
			h.Log.Warn("load courses failed", zap.Error(loadErr))
		}
	}

	h.renderList(w, r, h.newListData(ctx, r, page, "", msgs))
}
