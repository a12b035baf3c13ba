package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/eduadmin/internal/domain/models"
)

// Faculties wraps /api/v1/faculties. Unlike the other resources, faculty
// create and update send the record as a JSON body.
type Faculties struct{ c *Client }

func (s Faculties) List(ctx context.Context) ([]models.Faculty, error) {
	var out []models.Faculty
	if err := s.c.do(ctx, http.MethodGet, resourcePath("faculties"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s Faculties) Get(ctx context.Context, id int) (models.Faculty, error) {
	var out models.Faculty
	err := s.c.do(ctx, http.MethodGet, resourcePath("faculties", strconv.Itoa(id)), nil, nil, &out)
	return out, err
}

func (s Faculties) Create(ctx context.Context, f models.Faculty) error {
	f.ID = 0
	return s.c.do(ctx, http.MethodPost, resourcePath("faculties"), nil, f, nil)
}

func (s Faculties) Update(ctx context.Context, id int, f models.Faculty) error {
	f.ID = id
	return s.c.do(ctx, http.MethodPut, resourcePath("faculties", strconv.Itoa(id)), nil, f, nil)
}

func (s Faculties) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, resourcePath("faculties", strconv.Itoa(id)), nil, nil, nil)
}
