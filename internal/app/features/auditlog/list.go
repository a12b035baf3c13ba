// internal/app/features/auditlog/list.go
package auditlog

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

const maxRows = 100

// ServeList handles GET /audit. Filters: resource, event_type, target,
// status (ok|failed), start_date and end_date (YYYY-MM-DD, inclusive), and
// tz for display.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM:    viewdata.NewBaseVM(r, "Audit Log", "/"),
		Enabled:   h.Store != nil,
		Resource:  query.Get(r, "resource"),
		EventType: query.Get(r, "event_type"),
		TargetID:  query.Get(r, "target"),
		Status:    query.Get(r, "status"),
		StartDate: query.Get(r, "start_date"),
		EndDate:   query.Get(r, "end_date"),
		TZ:        query.Get(r, "tz"),
		Resources: resources,
	}
	data.EventTypes = eventTypesFor(data.Resource)

	if h.Store == nil {
		templates.Render(w, r, "audit_list", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	filter := buildFilter(data)
	events, err := h.fetch(ctx, filter)
	if err != nil {
		h.Log.Error("failed to query audit events", zap.Error(err))
		data.AddAlerts("The audit log could not be loaded.")
		templates.Render(w, r, "audit_list", data)
		return
	}
	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.Log.Warn("failed to count audit events", zap.Error(err))
		total = int64(len(events))
	}

	loc := location(data.TZ)
	data.Items = make([]listItem, 0, len(events))
	for _, e := range events {
		data.Items = append(data.Items, listItem{
			Timestamp:     e.Timestamp.In(loc),
			EventType:     e.EventType,
			Resource:      e.Resource,
			TargetID:      e.TargetID,
			IP:            e.IP,
			RequestID:     e.RequestID,
			Success:       e.Success,
			FailureReason: e.FailureReason,
			Details:       e.Details,
		})
	}
	data.Total = total
	data.Shown = len(data.Items)

	templates.Render(w, r, "audit_list", data)
}

// fetch picks the narrowest store call for the filter.
func (h *Handler) fetch(ctx context.Context, f audit.QueryFilter) ([]audit.Event, error) {
	switch {
	case f == (audit.QueryFilter{Limit: maxRows}):
		return h.Store.GetRecent(ctx, maxRows)
	case f == (audit.QueryFilter{Resource: f.Resource, TargetID: f.TargetID, Limit: maxRows}) && f.Resource != "" && f.TargetID != "":
		return h.Store.GetForTarget(ctx, f.Resource, f.TargetID, maxRows)
	default:
		return h.Store.Query(ctx, f)
	}
}

func buildFilter(d listData) audit.QueryFilter {
	f := audit.QueryFilter{
		Resource:  d.Resource,
		EventType: d.EventType,
		TargetID:  d.TargetID,
		Limit:     maxRows,
	}
	switch d.Status {
	case "ok":
		ok := true
		f.Success = &ok
	case "failed":
		failed := false
		f.Success = &failed
	}

	loc := location(d.TZ)
	if t, err := time.ParseInLocation("2006-01-02", d.StartDate, loc); err == nil {
		f.StartTime = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", d.EndDate, loc); err == nil {
		endOfDay := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.EndTime = &endOfDay
	}
	return f
}

// location resolves an IANA zone name, defaulting to UTC.
func location(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
