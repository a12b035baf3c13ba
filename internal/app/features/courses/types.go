// internal/app/features/courses/types.go
package courses

import (
	"github.com/dalemusser/eduadmin/internal/app/system/formutil"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/eduadmin/internal/domain/models"
)

const (
	basePath    = "/courses"
	tableTarget = "courses-table-wrap"

	msgCreated = "Added course successfully"
	msgUpdated = "Update successfully"
)

type courseInput struct {
	Name      string `validate:"required,max=100" label:"Name"`
	FacultyID int    `validate:"required" label:"Faculty"`
}

type courseForm struct {
	Name      string
	FacultyID int
}

type courseRow struct {
	ID      int
	Name    string
	Faculty string
}

func toRow(c models.Course) courseRow {
	return courseRow{
		ID:      c.ID,
		Name:    c.Name,
		Faculty: c.FacultyName(),
	}
}

type facultyOption struct {
	ID   int
	Name string
}

type listData struct {
	viewdata.BaseVM
	Search    viewdata.SearchBox
	Query     string
	NoMatch   bool
	Rows      []courseRow
	Faculties []facultyOption

	ShowAdd  bool
	AddError string
	Form     courseForm
}

type editData struct {
	formutil.Base
	ID        int
	Form      courseForm
	Faculties []facultyOption
}

func fields(c models.Course) []string {
	return []string{c.Name, c.FacultyName()}
}
