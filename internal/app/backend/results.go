package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/eduadmin/internal/domain/models"
)

// Results wraps /api/v1/results. A result is addressed by its student and
// course ids rather than a single id.
type Results struct{ c *Client }

func resultPath(k models.ResultID) string {
	return resourcePath("results", "student", strconv.Itoa(k.StudentID), "course", strconv.Itoa(k.CourseID))
}

func (s Results) List(ctx context.Context) ([]models.Result, error) {
	var out []models.Result
	if err := s.c.do(ctx, http.MethodGet, resourcePath("results"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AtLeast lists results whose grade is greater than or equal to grade.
func (s Results) AtLeast(ctx context.Context, grade int) ([]models.Result, error) {
	var out []models.Result
	if err := s.c.do(ctx, http.MethodGet, resourcePath("results", "grade", strconv.Itoa(grade)), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s Results) Create(ctx context.Context, k models.ResultID, grade int) error {
	q := url.Values{}
	q.Set("studentId", strconv.Itoa(k.StudentID))
	q.Set("courseId", strconv.Itoa(k.CourseID))
	body := struct {
		Grade int `json:"grade"`
	}{Grade: grade}
	return s.c.do(ctx, http.MethodPost, resourcePath("results"), q, body, nil)
}

func (s Results) Update(ctx context.Context, k models.ResultID, grade int) error {
	q := url.Values{}
	q.Set("grade", strconv.Itoa(grade))
	return s.c.do(ctx, http.MethodPut, resultPath(k), q, nil, nil)
}

func (s Results) Delete(ctx context.Context, k models.ResultID) error {
	return s.c.do(ctx, http.MethodDelete, resultPath(k), nil, nil, nil)
}
