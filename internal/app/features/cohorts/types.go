// internal/app/features/cohorts/types.go
package cohorts

import (
	"github.com/dalemusser/eduadmin/internal/app/system/formutil"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/eduadmin/internal/domain/models"
)

const (
	basePath    = "/cohorts"
	tableTarget = "cohorts-table-wrap"

	msgCreated = "Added cohort successfully"
	msgUpdated = "Update successfully"
)

type cohortInput struct {
	Name      string `validate:"required,max=100" label:"Name"`
	FacultyID int    `validate:"required" label:"Faculty"`
}

type cohortForm struct {
	Name      string
	FacultyID int
}

type cohortRow struct {
	ID       int
	Name     string
	Faculty  string
	Students int
}

func toRow(c models.Cohort) cohortRow {
	return cohortRow{
		ID:       c.ID,
		Name:     c.Name,
		Faculty:  c.FacultyName(),
		Students: len(c.Students),
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
	Rows      []cohortRow
	Faculties []facultyOption

	ShowAdd  bool
	AddError string
	Form     cohortForm
}

type editData struct {
	formutil.Base
	ID        int
	Form      cohortForm
	Faculties []facultyOption
}

// fields returns the searchable display fields of a cohort. A cohort without
// a faculty only matches on its name.
func fields(c models.Cohort) []string {
	return []string{c.Name, c.FacultyName()}
}
