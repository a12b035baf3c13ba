// internal/app/features/cohorts/delete.go
package cohorts

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

// HandleDelete removes a cohort and re-renders the list.
// Success reloads the list without an alert; failure alerts the backend's
// message and leaves the list as it was.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Cohort not found.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msgs := &listview.Messages{}
	page := h.cohortsPage(msgs)

	err := page.Mutate(ctx, func(ctx context.Context) error {
		return h.API.Cohorts.Delete(ctx, id)
	}, "")
	h.Audit.Deleted(ctx, r, audit.ResourceCohort, strconv.Itoa(id), err)

	if err != nil {
		h.Log.Warn("delete cohort failed", zap.Error(err), zap.Int("id", id))
		if loadErr := page.Load(ctx); loadErr != nil {
			h.Log.Warn("load cohorts failed", zap.Error(loadErr))
		}
	}

	h.renderList(w, r, h.newListData(ctx, r, page, "", msgs))
}
