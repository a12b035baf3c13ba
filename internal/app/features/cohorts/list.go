// internal/app/features/cohorts/list.go
package cohorts

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

// ServeList renders the cohorts list. ?q= matches cohort or faculty names.
// It supports HTMX partial refresh of the table when HX-Target="cohorts-table-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := query.Search(r, "q")
	msgs := &listview.Messages{}
	page := h.cohortsPage(msgs)

	noMatch := false
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("load cohorts failed", zap.Error(err))
	} else if q != "" {
		narrowed, err := page.Search(ctx, q)
		if err != nil {
			h.Log.Warn("reload cohorts after search failed", zap.Error(err), zap.String("q", q))
		}
		noMatch = !narrowed
	}

	data := h.newListData(ctx, r, page, q, msgs)
	data.NoMatch = noMatch
	h.renderList(w, r, data)
}

func (h *Handler) cohortsPage(msgs *listview.Messages) *listview.Page[models.Cohort] {
	return listview.New(h.API.Cohorts.List, fields, msgs)
}

func (h *Handler) facultyOptions(ctx context.Context, msgs *listview.Messages) []facultyOption {
	page := listview.New(h.API.Faculties.List, nil, msgs)
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("load faculties for dropdown failed", zap.Error(err))
	}
	out := make([]facultyOption, 0, len(page.Items))
	for _, f := range page.Items {
		out = append(out, facultyOption{ID: f.ID, Name: f.Name})
	}
	return out
}

func (h *Handler) newListData(ctx context.Context, r *http.Request, page *listview.Page[models.Cohort], q string, msgs *listview.Messages) listData {
	faculties := h.facultyOptions(ctx, msgs)

	rows := make([]cohortRow, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, toRow(c))
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Cohorts", "/"),
		Search: viewdata.SearchBox{
			Action:      basePath,
			Target:      tableTarget,
			Query:       q,
			Placeholder: "Search by cohort or faculty",
		},
		Query:     q,
		Rows:      rows,
		Faculties: faculties,
	}
	data.AddAlerts(*msgs...)
	return data
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, data listData) {
	if flashed := h.Flash.Pop(w, r); len(flashed) > 0 {
		pending := data.Alerts
		data.Alerts = nil
		data.AddAlerts(flashed...)
		data.Alerts = append(data.Alerts, pending...)
	}

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == tableTarget {
		templates.RenderSnippet(w, "cohorts_table", data)
		return
	}
	templates.Render(w, r, "cohorts_list", data)
}
