package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/eduadmin/internal/domain/models"
)

// Students wraps /api/v1/students.
type Students struct{ c *Client }

// StudentUpdate carries the optional fields of a student update. Blank
// fields are left out of the request, so the backend keeps current values.
type StudentUpdate struct {
	Name     string
	Email    string
	Gender   models.Gender
	DOB      models.Date
	CohortID int
}

func (u StudentUpdate) query() url.Values {
	q := url.Values{}
	setString(q, "name", u.Name)
	setString(q, "email", u.Email)
	setString(q, "gender", string(u.Gender))
	setString(q, "dob", u.DOB.String())
	setInt(q, "cohortId", u.CohortID)
	return q
}

func (s Students) List(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	if err := s.c.do(ctx, http.MethodGet, resourcePath("students"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s Students) Get(ctx context.Context, id int) (models.Student, error) {
	var out models.Student
	err := s.c.do(ctx, http.MethodGet, resourcePath("students", strconv.Itoa(id)), nil, nil, &out)
	return out, err
}

// Create adds a student to the cohort identified by cohortID.
func (s Students) Create(ctx context.Context, st models.Student, cohortID int) error {
	q := url.Values{}
	q.Set("cohortId", strconv.Itoa(cohortID))
	st.ID = 0
	st.Cohort = nil
	return s.c.do(ctx, http.MethodPost, resourcePath("students"), q, st, nil)
}

func (s Students) Update(ctx context.Context, id int, u StudentUpdate) error {
	return s.c.do(ctx, http.MethodPut, resourcePath("students", strconv.Itoa(id)), u.query(), nil, nil)
}

func (s Students) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, resourcePath("students", strconv.Itoa(id)), nil, nil, nil)
}

func setString(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setInt(q url.Values, key string, val int) {
	if val != 0 {
		q.Set(key, strconv.Itoa(val))
	}
}
