// internal/app/features/students/list.go
package students

import (
	"context"
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/eduadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeList renders the students list with its search box.
//
// A query narrows the loaded list to students whose name, email or cohort
// contains it. A query with no matches shows the full list again.
// It supports HTMX partial refresh of the table when HX-Target="students-table-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := query.Search(r, "q")
	msgs := &listview.Messages{}
	page := h.studentsPage(msgs)

	noMatch := false
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("load students failed", zap.Error(err))
	} else if q != "" {
		narrowed, err := page.Search(ctx, q)
		if err != nil {
			h.Log.Warn("reload students after search failed", zap.Error(err), zap.String("q", q))
		}
		noMatch = !narrowed
	}

	data := h.newListData(ctx, r, page, q, msgs)
	data.NoMatch = noMatch
	h.renderList(w, r, data)
}

// studentsPage builds the list view-model over the backend's student list.
func (h *Handler) studentsPage(msgs *listview.Messages) *listview.Page[models.Student] {
	return listview.New(h.API.Students.List, fields, msgs)
}

// cohortOptions loads the cohort dropdown. Failures are alerted like any
// other list load and leave the dropdown empty.
func (h *Handler) cohortOptions(ctx context.Context, msgs *listview.Messages) []cohortOption {
	page := listview.New(h.API.Cohorts.List, nil, msgs)
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("load cohorts for dropdown failed", zap.Error(err))
	}
	out := make([]cohortOption, 0, len(page.Items))
	for _, c := range page.Items {
		out = append(out, cohortOption{ID: c.ID, Name: c.Name})
	}
	return out
}

// newListData assembles the list view model. Alerts queued by a redirect
// come first, followed by the ones raised while handling this request.
func (h *Handler) newListData(ctx context.Context, r *http.Request, page *listview.Page[models.Student], q string, msgs *listview.Messages) listData {
	cohorts := h.cohortOptions(ctx, msgs)

	rows := make([]studentRow, 0, len(page.Items))
	for _, s := range page.Items {
		rows = append(rows, toRow(s))
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Students", "/"),
		Search: viewdata.SearchBox{
			Action:      basePath,
			Target:      tableTarget,
			Query:       q,
			Placeholder: "Search by name, email or cohort",
		},
		Query:   q,
		Rows:    rows,
		Cohorts: cohorts,
		Genders: genderOptions(),
	}
	data.AddAlerts(*msgs...)
	return data
}

// renderList writes the page, or only the table for HTMX table refreshes.
func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, data listData) {
	if flashed := h.Flash.Pop(w, r); len(flashed) > 0 {
		pending := data.Alerts
		data.Alerts = nil
		data.AddAlerts(flashed...)
		data.Alerts = append(data.Alerts, pending...)
	}

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == tableTarget {
		templates.RenderSnippet(w, "students_table", data)
		return
	}
	templates.Render(w, r, "students_list", data)
}
