// Package listview holds the per-list view-model shared by every feature:
// the cached items, the search over them, and the reload-after-mutation flow.
package listview

import (
	"context"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	"github.com/dalemusser/eduadmin/internal/app/system/listfilter"
)

// Alerter receives user-facing alert messages.
type Alerter interface {
	Alert(msg string)
}

// Page is the view-model behind one list screen. It is built per request and
// is not safe for concurrent use.
type Page[T any] struct {
	// Fetch loads the full list from the backend.
	Fetch func(ctx context.Context) ([]T, error)
	// Fields returns the searchable display fields of an item.
	Fields func(T) []string
	Alerts Alerter

	Items []T
}

// New returns a Page with an empty item list.
func New[T any](fetch func(context.Context) ([]T, error), fields func(T) []string, alerts Alerter) *Page[T] {
	return &Page[T]{Fetch: fetch, Fields: fields, Alerts: alerts}
}

// Load fetches the full list once. On failure the server message is alerted
// and Items keeps its previous contents.
func (p *Page[T]) Load(ctx context.Context) error {
	items, err := p.Fetch(ctx)
	if err != nil {
		p.alert(backend.Message(err))
		return err
	}
	if items == nil {
		items = []T{}
	}
	p.Items = items
	return nil
}

// Search narrows Items to those matching q and reports whether it did. A
// blank query, or one that matches nothing, reloads the full list instead.
func (p *Page[T]) Search(ctx context.Context, q string) (bool, error) {
	if q != "" && p.Fields != nil {
		if matched := listfilter.Filter(p.Items, q, p.Fields); len(matched) > 0 {
			p.Items = matched
			return true, nil
		}
	}
	return false, p.Load(ctx)
}

// Mutate runs a single create, update or delete call. On success it alerts
// successMsg (when set) and reloads once. On failure it alerts the server
// message and leaves Items alone.
func (p *Page[T]) Mutate(ctx context.Context, op func(ctx context.Context) error, successMsg string) error {
	if err := op(ctx); err != nil {
		p.alert(backend.Message(err))
		return err
	}
	if successMsg != "" {
		p.alert(successMsg)
	}
	return p.Load(ctx)
}

func (p *Page[T]) alert(msg string) {
	if p.Alerts != nil && msg != "" {
		p.Alerts.Alert(msg)
	}
}

// Messages is an Alerter that collects alerts in order. An alert equal to
// the one before it is dropped, so a backend outage seen by several loads in
// one request is reported once.
type Messages []string

// Alert appends msg unless it repeats the last alert.
func (m *Messages) Alert(msg string) {
	if len(*m) > 0 && m.Last() == msg {
		return
	}
	*m = append(*m, msg)
}

// Last returns the most recent alert, or "".
func (m Messages) Last() string {
	if len(m) == 0 {
		return ""
	}
	return m[len(m)-1]
}
