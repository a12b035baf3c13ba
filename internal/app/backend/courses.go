package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/eduadmin/internal/domain/models"
)

// Courses wraps /api/v1/courses.
type Courses struct{ c *Client }

func (s Courses) List(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := s.c.do(ctx, http.MethodGet, resourcePath("courses"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s Courses) Get(ctx context.Context, id int) (models.Course, error) {
	var out models.Course
	err := s.c.do(ctx, http.MethodGet, resourcePath("courses", strconv.Itoa(id)), nil, nil, &out)
	return out, err
}

func (s Courses) Create(ctx context.Context, name string, facultyID int) error {
	q := url.Values{}
	q.Set("facultyId", strconv.Itoa(facultyID))
	return s.c.do(ctx, http.MethodPost, resourcePath("courses"), q, models.Course{Name: name}, nil)
}

func (s Courses) Update(ctx context.Context, id int, name string, facultyID int) error {
	q := url.Values{}
	setString(q, "name", name)
	setInt(q, "facultyId", facultyID)
	return s.c.do(ctx, http.MethodPut, resourcePath("courses", strconv.Itoa(id)), q, nil, nil)
}

func (s Courses) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, resourcePath("courses", strconv.Itoa(id)), nil, nil, nil)
}
