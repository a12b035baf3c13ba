package home

import (
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type section struct {
	Title string
	Href  string
	Blurb string
}

var sections = []section{
	{Title: "Students", Href: "/students", Blurb: "Enrol students and assign them to cohorts."},
	{Title: "Cohorts", Href: "/cohorts", Blurb: "Group students under a faculty."},
	{Title: "Faculties", Href: "/faculties", Blurb: "Departments that own cohorts and courses."},
	{Title: "Courses", Href: "/courses", Blurb: "Courses offered by each faculty."},
	{Title: "Results", Href: "/results", Blurb: "Grades per student per course."},
	{Title: "Audit log", Href: "/audit", Blurb: "Who changed what, and whether the backend accepted it."},
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Sections []section
	}{
		BaseVM:   viewdata.NewBaseVM(r, "Welcome", "/"),
		Sections: sections,
	}

	templates.Render(w, r, "home", data)
}
