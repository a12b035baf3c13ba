// internal/app/features/faculties/edit.go
package faculties

import (
	"context"
	"errors"
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

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Faculty not found.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := h.API.Faculties.Get(ctx, id)
	if err != nil {
		h.Log.Warn("get faculty failed", zap.Error(err), zap.Int("id", id))
		if errors.Is(err, backend.ErrNotFound) {
			uierrors.RenderNotFound(w, r, backend.Message(err), basePath)
			return
		}
		uierrors.RenderBackendUnavailable(w, r, backend.Message(err), basePath)
		return
	}

	templates.Render(w, r, "faculties_edit", newEditData(r, id, f.Name))
}

// HandleEdit renames a faculty. The backend takes the full record as JSON.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		uierrors.RenderNotFound(w, r, "Faculty not found.", basePath)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.RenderBadRequest(w, r, "The form could not be read.", basePath)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	name := strings.TrimSpace(r.PostFormValue("name"))
	if res := inputval.Validate(facultyInput{Name: name}); res.HasErrors() {
		data := newEditData(r, id, name)
		data.SetError(res.First())
		templates.Render(w, r, "faculties_edit", data)
		return
	}

	err := h.API.Faculties.Update(ctx, id, models.Faculty{ID: id, Name: name})
	h.Audit.Updated(ctx, r, audit.ResourceFaculty, strconv.Itoa(id), err, map[string]string{"name": name})
	if err != nil {
		h.Log.Warn("update faculty failed", zap.Error(err), zap.Int("id", id))
		data := newEditData(r, id, name)
		data.AddAlerts(backend.Message(err))
		templates.Render(w, r, "faculties_edit", data)
		return
	}

	if err := h.Flash.Add(w, r, msgUpdated); err != nil {
		h.Log.Warn("flash save failed", zap.Error(err))
	}
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.ForResource(basePath)), http.StatusSeeOther)
}

func newEditData(r *http.Request, id int, name string) editData {
	data := editData{ID: id, Name: name}
	formutil.SetBase(&data.Base, r, "Edit Faculty", basePath)
	return data
}

func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}
