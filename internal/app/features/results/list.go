// internal/app/features/results/list.go
package results

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/eduadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeList renders the results list. ?q= matches student or course names;
// ?min= restricts the list to grades at or above the given value.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := query.Search(r, "q")
	minGrade, hasMin := minParam(r)
	msgs := &listview.Messages{}
	page := h.resultsPage(minGrade, hasMin, msgs)

	noMatch := false
	if err := page.Load(ctx); err != nil {
		h.Log.Warn("load results failed", zap.Error(err))
	} else if q != "" {
		narrowed, err := page.Search(ctx, q)
		if err != nil {
			h.Log.Warn("reload results after search failed", zap.Error(err), zap.String("q", q))
		}
		noMatch = !narrowed
	}

	data := h.newListData(ctx, r, page, q, msgs)
	data.NoMatch = noMatch
	if hasMin {
		data.MinGrade = strconv.Itoa(minGrade)
	}
	h.renderList(w, r, data)
}

// minParam reads ?min=. Anything but a whole number of zero or more is ignored.
func minParam(r *http.Request) (int, bool) {
	raw := query.Get(r, "min")
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// resultsPage builds the list page. With a grade floor every load, including
// the reload after a mutation, goes through the grade endpoint.
func (h *Handler) resultsPage(minGrade int, hasMin bool, msgs *listview.Messages) *listview.Page[models.Result] {
	fetch := h.API.Results.List
	if hasMin {
		fetch = func(ctx context.Context) ([]models.Result, error) {
			return h.API.Results.AtLeast(ctx, minGrade)
		}
	}
	return listview.New(fetch, fields, msgs)
}

func (h *Handler) options(ctx context.Context, msgs *listview.Messages) (students, courses []option) {
	sp := listview.New(h.API.Students.List, nil, msgs)
	if err := sp.Load(ctx); err != nil {
		h.Log.Warn("load students for dropdown failed", zap.Error(err))
	}
	for _, s := range sp.Items {
		students = append(students, option{ID: s.ID, Name: s.Name})
	}

	cp := listview.New(h.API.Courses.List, nil, msgs)
	if err := cp.Load(ctx); err != nil {
		h.Log.Warn("load courses for dropdown failed", zap.Error(err))
	}
	for _, c := range cp.Items {
		courses = append(courses, option{ID: c.ID, Name: c.Name})
	}
	return students, courses
}

func (h *Handler) newListData(ctx context.Context, r *http.Request, page *listview.Page[models.Result], q string, msgs *listview.Messages) listData {
	students, courses := h.options(ctx, msgs)

	rows := make([]resultRow, 0, len(page.Items))
	for _, res := range page.Items {
		rows = append(rows, toRow(res))
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Results", "/"),
		Search: viewdata.SearchBox{
			Action:      basePath,
			Target:      tableTarget,
			Query:       q,
			Placeholder: "Search by student or course",
		},
		Query:    q,
		Rows:     rows,
		Students: students,
		Courses:  courses,
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
		templates.RenderSnippet(w, "results_table", data)
		return
	}
	templates.Render(w, r, "results_list", data)
}
