package listview_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	"github.com/dalemusser/eduadmin/internal/app/system/listview"
	"github.com/dalemusser/eduadmin/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	items []models.Student
	err   error
	calls int
}

func (f *fakeSource) fetch(context.Context) ([]models.Student, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Student, len(f.items))
	copy(out, f.items)
	return out, nil
}

func studentFields(s models.Student) []string {
	return []string{s.Name, s.Email, s.CohortName()}
}

func newPage(src *fakeSource) (*listview.Page[models.Student], *listview.Messages) {
	msgs := &listview.Messages{}
	return listview.New(src.fetch, studentFields, msgs), msgs
}

func seed() *fakeSource {
	cs := &models.Cohort{ID: 7, Name: "CS-2024"}
	return &fakeSource{items: []models.Student{
		{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Cohort: cs},
		{ID: 2, Name: "Alan Turing", Email: "alan@bletchley.uk"},
		{ID: 3, Name: "Grace Hopper", Email: "grace@navy.mil", Cohort: cs},
	}}
}

func TestLoad_ReplacesItems(t *testing.T) {
	src := seed()
	p, msgs := newPage(src)

	require.NoError(t, p.Load(context.Background()))
	assert.Len(t, p.Items, 3)
	assert.Equal(t, 1, src.calls)
	assert.Empty(t, *msgs)
}

func TestLoad_ErrorAlertsAndKeepsItems(t *testing.T) {
	src := seed()
	p, msgs := newPage(src)
	require.NoError(t, p.Load(context.Background()))

	src.err = &backend.APIError{StatusCode: 500, Message: "Database unavailable"}
	err := p.Load(context.Background())

	require.Error(t, err)
	assert.Len(t, p.Items, 3, "items must survive a failed reload")
	assert.Equal(t, listview.Messages{"Database unavailable"}, *msgs)
}

func TestMutate_SuccessReloadsExactlyOnce(t *testing.T) {
	src := seed()
	p, msgs := newPage(src)
	require.NoError(t, p.Load(context.Background()))
	before := src.calls

	opCalls := 0
	err := p.Mutate(context.Background(), func(context.Context) error {
		opCalls++
		src.items = append(src.items, models.Student{ID: 4, Name: "Barbara Liskov"})
		return nil
	}, "Added student successfully")

	require.NoError(t, err)
	assert.Equal(t, 1, opCalls)
	assert.Equal(t, before+1, src.calls, "exactly one reload after a successful mutation")
	assert.Len(t, p.Items, 4)
	assert.Equal(t, listview.Messages{"Added student successfully"}, *msgs)
}

func TestMutate_SuccessWithoutMessage(t *testing.T) {
	src := seed()
	p, msgs := newPage(src)

	require.NoError(t, p.Mutate(context.Background(), func(context.Context) error { return nil }, ""))
	assert.Equal(t, 1, src.calls)
	assert.Empty(t, *msgs)
}

func TestMutate_ErrorAlertsVerbatimWithoutReload(t *testing.T) {
	src := seed()
	p, msgs := newPage(src)
	require.NoError(t, p.Load(context.Background()))
	before := append([]models.Student(nil), p.Items...)

	apiErr := &backend.APIError{StatusCode: 400, Message: "Email already exist in database"}
	err := p.Mutate(context.Background(), func(context.Context) error {
		return apiErr
	}, "Added student successfully")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apiErr))
	assert.Equal(t, 1, src.calls, "no reload after a failed mutation")
	assert.Equal(t, before, p.Items, "no list mutation after a failed mutation")
	assert.Equal(t, listview.Messages{"Email already exist in database"}, *msgs)
}

func TestSearch_CaseInsensitiveAnyField(t *testing.T) {
	tests := []struct {
		query string
		ids   []int
	}{
		{"ADA", []int{1}},
		{"bletchley", []int{2}},
		{"cs-2024", []int{1, 3}},
		{"a", []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			src := seed()
			p, _ := newPage(src)
			require.NoError(t, p.Load(context.Background()))

			narrowed, err := p.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.True(t, narrowed)
			var got []int
			for _, s := range p.Items {
				got = append(got, s.ID)
			}
			assert.Equal(t, tt.ids, got)
			assert.Equal(t, 1, src.calls, "a matching search does not reload")
		})
	}
}

func TestSearch_BlankQueryRestoresFullList(t *testing.T) {
	src := seed()
	p, _ := newPage(src)
	require.NoError(t, p.Load(context.Background()))
	_, err := p.Search(context.Background(), "grace")
	require.NoError(t, err)
	require.Len(t, p.Items, 1)

	narrowed, err := p.Search(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, narrowed)
	assert.Len(t, p.Items, 3)
	assert.Equal(t, 2, src.calls)
}

func TestSearch_NoMatchReloads(t *testing.T) {
	src := seed()
	p, _ := newPage(src)
	require.NoError(t, p.Load(context.Background()))

	narrowed, err := p.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.False(t, narrowed, "no match falls back to the full list")
	assert.Len(t, p.Items, 3)
	assert.Equal(t, 2, src.calls)
}

func TestSearch_NarrowsPreviouslyFilteredItems(t *testing.T) {
	src := seed()
	p, _ := newPage(src)
	require.NoError(t, p.Load(context.Background()))

	_, err := p.Search(context.Background(), "cs-2024")
	require.NoError(t, err)
	_, err = p.Search(context.Background(), "grace")
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	assert.Equal(t, 3, p.Items[0].ID)
	assert.Equal(t, 1, src.calls)
}

func TestMessages_Last(t *testing.T) {
	var m listview.Messages
	assert.Equal(t, "", m.Last())
	m.Alert("one")
	m.Alert("two")
	assert.Equal(t, "two", m.Last())
}

func TestMessages_DropsRepeatedAlert(t *testing.T) {
	var m listview.Messages
	m.Alert("Backend unreachable")
	m.Alert("Backend unreachable")
	m.Alert("Added student successfully")
	m.Alert("Backend unreachable")
	assert.Equal(t, listview.Messages{"Backend unreachable", "Added student successfully", "Backend unreachable"}, m)
}

func TestMutate_FailedCreateThenLoadAlertsOnce(t *testing.T) {
	src := seed()
	p, msgs := newPage(src)
	down := errors.New("dial tcp 127.0.0.1:8080: connection refused")
	src.err = down

	err := p.Mutate(context.Background(), func(context.Context) error { return down }, "Added student successfully")
	require.Error(t, err)
	require.Error(t, p.Load(context.Background()))

	assert.Len(t, *msgs, 1)
}
