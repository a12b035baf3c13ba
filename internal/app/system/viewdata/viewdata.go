// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/eduadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is shown in the page header when Init is not called.
const DefaultSiteName = "EduAdmin"

// NavItem is one entry of the top navigation bar.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// sections lists the navigation bar in display order.
var sections = []NavItem{
	{Label: "Students", Href: "/students"},
	{Label: "Cohorts", Href: "/cohorts"},
	{Label: "Faculties", Href: "/faculties"},
	{Label: "Courses", Href: "/courses"},
	{Label: "Results", Href: "/results"},
	{Label: "Audit", Href: "/audit"},
}

// SearchBox feeds the shared "search_box" template. Target is the id of
// the element the HTMX response replaces.
type SearchBox struct {
	Action      string
	Target      string
	Query       string
	Placeholder string
}

// BaseVM contains common fields for all view models.
// Embed this struct in feature-specific view models.
//
// Usage:
//
//	type listData struct {
//	    viewdata.BaseVM
//	    Rows []studentRow
//	}
//
//	data := listData{BaseVM: viewdata.NewBaseVM(r, "Students", "/")}
type BaseVM struct {
	SiteName string
	Nav      []NavItem

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Alerts are shown one after another in the alert dialog on page load.
	Alerts []string
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
)

// Init sets the site name used by every page. Call once during startup.
func Init(name string) {
	mu.Lock()
	defer mu.Unlock()
	if name = strings.TrimSpace(name); name != "" {
		siteName = name
	}
}

// NewBaseVM creates a BaseVM for the request.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	mu.RLock()
	name := siteName
	mu.RUnlock()

	path := r.URL.Path
	nav := make([]NavItem, len(sections))
	for i, s := range sections {
		s.Active = path == s.Href || strings.HasPrefix(path, s.Href+"/")
		nav[i] = s
	}

	return BaseVM{
		SiteName:    name,
		Nav:         nav,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}

// AddAlerts appends messages to the alert dialog. Markup is stripped and
// blank messages are dropped.
func (b *BaseVM) AddAlerts(msgs ...string) {
	for _, m := range msgs {
		if clean := htmlsanitize.PlainText(m); clean != "" {
			b.Alerts = append(b.Alerts, clean)
		}
	}
}
