// internal/app/features/results/export.go
package results

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

// ServeExport downloads the results list as a spreadsheet, honouring ?q=
// and ?min= the same way the list page does.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	q := query.Search(r, "q")
	minGrade, hasMin := minParam(r)
	page := h.resultsPage(minGrade, hasMin, &listview.Messages{})
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("export results failed", zap.Error(err))
		uierrors.RenderBackendUnavailable(w, r, backend.Message(err), basePath)
		return
	}
	if q != "" {
		if _, err := page.Search(ctx, q); err != nil {
			h.Log.Warn("export results search reload failed", zap.Error(err))
		}
	}

	sheet := xlsxexport.Sheet{
		Name:   "Results",
		Header: []string{"Student ID", "Student", "Course ID", "Course", "Grade"},
		Rows:   make([][]any, 0, len(page.Items)),
	}
	for _, res := range page.Items {
		row := toRow(res)
		sheet.Rows = append(sheet.Rows, []any{row.StudentID, row.Student, row.CourseID, row.Course, row.Grade})
	}

	if err := xlsxexport.Serve(w, "results.xlsx", sheet); err != nil {
		h.Log.Error("write results export failed", zap.Error(err))
	}
}
