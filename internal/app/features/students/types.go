// internal/app/features/students/types.go
package students

import (
	"strings"

	"github.com/dalemusser/eduadmin/internal/app/system/formutil"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/eduadmin/internal/domain/models"
)

const (
	basePath    = "/students"
	tableTarget = "students-table-wrap"

	msgCreated = "Added student successfully"
	msgUpdated = "Update successfully"
)

// studentInput is the add form. Only presence and the formats the backend
// needs to decode are checked here.
type studentInput struct {
	Name     string `validate:"required,max=100" label:"Name"`
	Email    string `validate:"required,max=254" label:"Email"`
	Gender   string `validate:"required,gender" label:"Gender"`
	DOB      string `validate:"required,isodate" label:"Date of birth"`
	Address  string `validate:"max=255" label:"Address"`
	CohortID int    `validate:"required" label:"Cohort"`
}

// studentEditInput is the edit form. Every field may be left blank to keep
// the current value; filled fields must still decode.
type studentEditInput struct {
	Name   string `validate:"max=100" label:"Name"`
	Email  string `validate:"max=254" label:"Email"`
	Gender string `validate:"omitempty,gender" label:"Gender"`
	DOB    string `validate:"omitempty,isodate" label:"Date of birth"`
}

// studentForm echoes form values back into the add modal or edit page.
type studentForm struct {
	Name     string
	Email    string
	Gender   string
	DOB      string
	Address  string
	CohortID int
}

func (f studentForm) editInput() studentEditInput {
	return studentEditInput{Name: f.Name, Email: f.Email, Gender: f.Gender, DOB: f.DOB}
}

func (f studentForm) input() studentInput {
	return studentInput{
		Name:     f.Name,
		Email:    f.Email,
		Gender:   f.Gender,
		DOB:      f.DOB,
		Address:  f.Address,
		CohortID: f.CohortID,
	}
}

// studentRow is one row of the students table.
type studentRow struct {
	ID       int
	Name     string
	Email    string
	Gender   string
	DOB      string
	Address  string
	Cohort   string
	CohortID int
}

func toRow(s models.Student) studentRow {
	row := studentRow{
		ID:      s.ID,
		Name:    s.Name,
		Email:   s.Email,
		Gender:  s.Gender.Label(),
		DOB:     s.DOB.String(),
		Address: s.Address,
		Cohort:  s.CohortName(),
	}
	if s.Cohort != nil {
		row.CohortID = s.Cohort.ID
	}
	return row
}

type cohortOption struct {
	ID   int
	Name string
}

type genderOption struct {
	Value string
	Label string
}

func genderOptions() []genderOption {
	out := make([]genderOption, len(models.Genders))
	for i, g := range models.Genders {
		out[i] = genderOption{Value: string(g), Label: g.Label()}
	}
	return out
}

// listData is the view model for the students list page.
type listData struct {
	viewdata.BaseVM
	Search  viewdata.SearchBox
	Query   string
	NoMatch bool
	Rows    []studentRow
	Cohorts []cohortOption
	Genders []genderOption

	// Add modal state, reopened with the entered values after a failed create.
	ShowAdd  bool
	AddError string
	Form     studentForm
}

// editData is the view model for the edit page.
type editData struct {
	formutil.Base
	ID      int
	Form    studentForm
	Cohorts []cohortOption
	Genders []genderOption
}

// fields returns the searchable display fields of a student.
func fields(s models.Student) []string {
	return []string{s.Name, s.Email, s.CohortName()}
}

func trimmed(v string) string { return strings.TrimSpace(v) }
