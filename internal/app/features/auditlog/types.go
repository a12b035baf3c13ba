// internal/app/features/auditlog/types.go
package auditlog

import (
	"time"

	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
)

// listItem represents a single audit event row for display.
type listItem struct {
	Timestamp     time.Time
	EventType     string
	Resource      string
	TargetID      string
	IP            string
	RequestID     string
	Success       bool
	FailureReason string
	Details       map[string]string
}

// listData is the view model for the audit log list page.
type listData struct {
	viewdata.BaseVM

	Enabled bool
	Items   []listItem
	Total   int64
	Shown   int

	// Filters
	Resource  string
	EventType string
	TargetID  string
	Status    string
	StartDate string
	EndDate   string
	TZ        string

	// Filter options
	Resources  []string
	EventTypes []string
}

var resources = []string{
	audit.ResourceStudent,
	audit.ResourceCohort,
	audit.ResourceFaculty,
	audit.ResourceCourse,
	audit.ResourceResult,
}

var actions = []string{audit.ActionCreated, audit.ActionUpdated, audit.ActionDeleted}

// eventTypesFor returns the event types of one resource, or of every
// resource when resource is empty.
func eventTypesFor(resource string) []string {
	rs := resources
	if resource != "" {
		rs = []string{resource}
	}
	out := make([]string, 0, len(rs)*len(actions))
	for _, r := range rs {
		for _, a := range actions {
			out = append(out, audit.EventType(r, a))
		}
	}
	return out
}
