package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/eduadmin/internal/domain/models"
)

// Cohorts wraps /api/v1/cohorts.
type Cohorts struct{ c *Client }

func (s Cohorts) List(ctx context.Context) ([]models.Cohort, error) {
	var out []models.Cohort
	if err := s.c.do(ctx, http.MethodGet, resourcePath("cohorts"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s Cohorts) Get(ctx context.Context, id int) (models.Cohort, error) {
	var out models.Cohort
	err := s.c.do(ctx, http.MethodGet, resourcePath("cohorts", strconv.Itoa(id)), nil, nil, &out)
	return out, err
}

// Create adds a cohort owned by the faculty identified by facultyID.
func (s Cohorts) Create(ctx context.Context, name string, facultyID int) error {
	q := url.Values{}
	q.Set("facultyId", strconv.Itoa(facultyID))
	return s.c.do(ctx, http.MethodPost, resourcePath("cohorts"), q, models.Cohort{Name: name}, nil)
}

// Update renames and/or moves a cohort. Blank name or zero facultyID keep
// the current value.
func (s Cohorts) Update(ctx context.Context, id int, name string, facultyID int) error {
	q := url.Values{}
	setString(q, "name", name)
	setInt(q, "facultyId", facultyID)
	return s.c.do(ctx, http.MethodPut, resourcePath("cohorts", strconv.Itoa(id)), q, nil, nil)
}

func (s Cohorts) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, resourcePath("cohorts", strconv.Itoa(id)), nil, nil, nil)
}
