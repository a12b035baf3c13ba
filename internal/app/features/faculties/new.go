// internal/app/features/faculties/new.go
package faculties

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/inputval"
	"github.com/dalemusser/eduadmin/internal/app/system/limits"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate adds a faculty and re-renders the list.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "The form could not be read.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	name := strings.TrimSpace(r.PostFormValue("name"))
	msgs := &listview.Messages{}
	page := h.facultiesPage(msgs)

	if res := inputval.Validate(facultyInput{Name: name}); res.HasErrors() {
		if err := page.Load(ctx); err != nil {
			h.Log.Warn("load faculties failed", zap.Error(err))
		}
		data := h.newListData(r, page, "", msgs)
		data.ShowAdd = true
		data.AddError = res.First()
		data.Name = name
		h.renderList(w, r, data)
		return
	}

	err := page.Mutate(ctx, func(ctx context.Context) error {
		return h.API.Faculties.Create(ctx, models.Faculty{Name: name})
	}, msgCreated)
	h.Audit.Created(ctx, r, audit.ResourceFaculty, "", err, map[string]string{"name": name})

	if err != nil {
		h.Log.Warn("create faculty failed", zap.Error(err), zap.String("name", name))
		if loadErr := page.Load(ctx); loadErr != nil {
			h.Log.Warn("load faculties failed", zap.Error(loadErr))
		}
		data := h.newListData(r, page, "", msgs)
		data.Name = name
		h.renderList(w, r, data)
		return
	}

	h.renderList(w, r, h.newListData(r, page, "", msgs))
}
