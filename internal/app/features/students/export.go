// internal/app/features/students/export.go
package students

import (
	"context"
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	uierrors "github.com/dalemusser/eduadmin/internal/app/features/errors"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/app/system/xlsxexport"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// ServeExport downloads the students list as a spreadsheet. The ?q= filter
// applies exactly as on the list page.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	q := query.Search(r, "q")
	page := h.studentsPage(&listview.Messages{})
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("export students failed", zap.Error(err))
		uierrors.RenderBackendUnavailable(w, r, backend.Message(err), basePath)
		return
	}
	if q != "" {
		if _, err := page.Search(ctx, q); err != nil {
			h.Log.Warn("export students search reload failed", zap.Error(err))
		}
	}

	sheet := xlsxexport.Sheet{
		Name:   "Students",
		Header: []string{"ID", "Name", "Email", "Gender", "Date of birth", "Address", "Cohort"},
		Rows:   make([][]any, 0, len(page.Items)),
	}
	for _, s := range page.Items {
		row := toRow(s)
		sheet.Rows = append(sheet.Rows, []any{row.ID, row.Name, row.Email, row.Gender, row.DOB, row.Address, row.Cohort})
	}

	if err := xlsxexport.Serve(w, "students.xlsx", sheet); err != nil {
		h.Log.Error("write students export failed", zap.Error(err))
	}
}
