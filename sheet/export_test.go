package sheet

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testValuesJSON = `{
  "values": [
    ["Name", "Visitors"],
    ["Ipanema", "1200"],
    ["Copacabana", "980"]
  ]
}`

func TestExportCSV(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, testValuesJSON)
	})

	worksheet, err := spreadsheet.WorksheetByTitle(context.Background(), "Summer")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, worksheet.ExportCSV(context.Background(), &b))

	expected := "Name,Visitors\nIpanema,1200\nCopacabana,980\n"
	assert.Equal(t, expected, b.String())
}

func TestExportTSV(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, testValuesJSON)
	})

	worksheet, err := spreadsheet.WorksheetByTitle(context.Background(), "Summer")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, worksheet.ExportTSV(context.Background(), &b))

	expected := "Name\tVisitors\nIpanema\t1200\nCopacabana\t980\n"
	assert.Equal(t, expected, b.String())
}

func TestExportXLSX(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, testValuesJSON)
	})

	worksheet, err := spreadsheet.WorksheetByTitle(context.Background(), "Summer")
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, worksheet.ExportXLSX(context.Background(), &b))

	f, err := excelize.OpenReader(&b)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summer"}, f.GetSheetList())

	name, err := f.GetCellValue("Summer", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ipanema", name)

	visitors, err := f.GetCellValue("Summer", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1200", visitors)
}
