// internal/app/features/results/types.go
package results

import (
	"strconv"

	"github.com/dalemusser/eduadmin/internal/app/system/formutil"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/eduadmin/internal/domain/models"
)

const (
	basePath    = "/results"
	tableTarget = "results-table-wrap"

	msgCreated = "Added result successfully"
	msgUpdated = "Update successfully"
)

// Grades are whole numbers the backend can store; it rejects negatives.
type resultInput struct {
	StudentID int    `validate:"required" label:"Student"`
	CourseID  int    `validate:"required" label:"Course"`
	Grade     string `validate:"required,wholenumber" label:"Grade"`
}

type gradeInput struct {
	Grade string `validate:"required,wholenumber" label:"Grade"`
}

type resultForm struct {
	StudentID int
	CourseID  int
	Grade     string
}

func (f resultForm) key() models.ResultID {
	return models.ResultID{StudentID: f.StudentID, CourseID: f.CourseID}
}

// grade is only called after validation, so the text parses.
func (f resultForm) grade() int {
	n, _ := strconv.Atoi(f.Grade)
	return n
}

type resultRow struct {
	StudentID int
	CourseID  int
	Student   string
	Course    string
	Grade     int
}

func toRow(res models.Result) resultRow {
	k := res.Key()
	return resultRow{
		StudentID: k.StudentID,
		CourseID:  k.CourseID,
		Student:   res.StudentName(),
		Course:    res.CourseName(),
		Grade:     res.Grade,
	}
}

type option struct {
	ID   int
	Name string
}

type listData struct {
	viewdata.BaseVM
	Search   viewdata.SearchBox
	Query    string
	MinGrade string
	NoMatch  bool
	Rows     []resultRow
	Students []option
	Courses  []option

	ShowAdd  bool
	AddError string
	Form     resultForm
}

type editData struct {
	formutil.Base
	Key     models.ResultID
	Student string
	Course  string
	Grade   string
}

func fields(res models.Result) []string {
	return []string{res.StudentName(), res.CourseName()}
}
