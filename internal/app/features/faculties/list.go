// internal/app/features/faculties/list.go
package faculties

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

// ServeList renders the faculties list filtered by ?q= on the name.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	q := query.Search(r, "q")
	msgs := &listview.Messages{}
	page := h.facultiesPage(msgs)

	noMatch := false
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("load faculties failed", zap.Error(err))
	} else if q != "" {
		narrowed, err := page.Search(ctx, q)
		if err != nil {
			h.Log.Warn("reload faculties after search failed", zap.Error(err), zap.String("q", q))
		}
		noMatch = !narrowed
	}

	data := h.newListData(r, page, q, msgs)
	data.NoMatch = noMatch
	h.renderList(w, r, data)
}

func (h *Handler) facultiesPage(msgs *listview.Messages) *listview.Page[models.Faculty] {
	return listview.New(h.API.Faculties.List, fields, msgs)
}

func (h *Handler) newListData(r *http.Request, page *listview.Page[models.Faculty], q string, msgs *listview.Messages) listData {
	rows := make([]facultyRow, 0, len(page.Items))
	for _, f := range page.Items {
		rows = append(rows, facultyRow{ID: f.ID, Name: f.Name})
	}
	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Faculties", "/"),
		Search: viewdata.SearchBox{
			Action:      basePath,
			Target:      tableTarget,
			Query:       q,
			Placeholder: "Search by name",
		},
		Query: q,
		Rows:  rows,
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
		templates.RenderSnippet(w, "faculties_table", data)
		return
	}
	templates.Render(w, r, "faculties_list", data)
}
