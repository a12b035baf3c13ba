package xlsxexport_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/eduadmin/internal/app/system/xlsxexport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite_RoundTripsThroughExcelize(t *testing.T) {
	var buf bytes.Buffer
	err := xlsxexport.Write(&buf, xlsxexport.Sheet{
		Name:   "Students",
		Header: []string{"ID", "Name", "Email"},
		Rows: [][]any{
			{101, "Ada Lovelace", "ada@example.com"},
			{102, "Alan Turing", "alan@bletchley.uk"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Students", f.GetSheetName(0))
	rows, err := f.GetRows("Students")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Name", "Email"},
		{"101", "Ada Lovelace", "ada@example.com"},
		{"102", "Alan Turing", "alan@bletchley.uk"},
	}, rows)
}

func TestServe_SetsDownloadHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, xlsxexport.Serve(rec, "results.xlsx", xlsxexport.Sheet{Header: []string{"Grade"}}))

	assert.Equal(t, xlsxexport.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="results.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.NotZero(t, rec.Body.Len())
}
