// internal/app/features/faculties/types.go
package faculties

import (
	"github.com/dalemusser/eduadmin/internal/app/system/formutil"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/eduadmin/internal/domain/models"
)

const (
	basePath    = "/faculties"
	tableTarget = "faculties-table-wrap"

	msgCreated = "Added faculty successfully"
	msgUpdated = "Update successfully"
)

type facultyInput struct {
	Name string `validate:"required,max=100" label:"Name"`
}

type facultyRow struct {
	ID   int
	Name string
}

type listData struct {
	viewdata.BaseVM
	Search  viewdata.SearchBox
	Query   string
	NoMatch bool
	Rows    []facultyRow

	ShowAdd  bool
	AddError string
	Name     string
}

type editData struct {
	formutil.Base
	ID   int
	Name string
}

func fields(f models.Faculty) []string {
	return []string{f.Name}
}
