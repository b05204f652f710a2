package sheet

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"

	"gsheets/a1"
)

func TestAddWorksheet(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		rq := sheets.BatchUpdateSpreadsheetRequest{}
		decodeBody(t, r, &rq)

		require.Len(t, rq.Requests, 1)
		add := rq.Requests[0].AddSheet
		require.NotNil(t, add)
		assert.Equal(t, "Autumn", add.Properties.Title)
		assert.Equal(t, int64(20), add.Properties.GridProperties.RowCount)

		respondJSON(w, `{
          "replies": [
            {
              "addSheet": {
                "properties": {
                  "sheetId": 7,
                  "title": "Autumn",
                  "index": 2,
                  "gridProperties": { "rowCount": 20, "columnCount": 8 }
                }
              }
            }
          ]
        }`)
	})

	worksheet, err := spreadsheet.AddWorksheet(context.Background(), "Autumn", 20, 8)
	require.NoError(t, err)

	assert.Equal(t, int64(7), worksheet.ID())
	assert.Equal(t, 20, worksheet.Rows())
	assert.Len(t, spreadsheet.Worksheets(), 3)
}

func TestDeleteWorksheet(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		rq := sheets.BatchUpdateSpreadsheetRequest{}
		decodeBody(t, r, &rq)

		require.Len(t, rq.Requests, 1)
		del := rq.Requests[0].DeleteSheet
		require.NotNil(t, del)
		assert.Equal(t, int64(1), del.SheetId)

		respondJSON(w, `{}`)
	})

	ctx := context.Background()

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, "Winter")
	require.NoError(t, err)

	require.NoError(t, spreadsheet.DeleteWorksheet(ctx, worksheet))
	assert.Len(t, spreadsheet.Worksheets(), 1)
	assert.Equal(t, "Summer", spreadsheet.Worksheets()[0].Title())
}

func TestNamedRanges(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	ranges := spreadsheet.NamedRanges()
	require.Len(t, ranges, 1)

	assert.Equal(t, "stations", ranges[0].Name())
	assert.Equal(t, a1.Cell(1, 1), ranges[0].Start())
	assert.Equal(t, a1.Cell(4, 3), ranges[0].End())
	assert.Equal(t, "Summer", ranges[0].Worksheet().Title())
}

func TestWorksheetNamedRange(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	worksheet, err := spreadsheet.WorksheetByTitle(context.Background(), "Summer")
	require.NoError(t, err)

	drange, err := worksheet.NamedRange(context.Background(), "stations")
	require.NoError(t, err)
	assert.Equal(t, "'Summer'!A1:C4", drange.Label())
}

func TestCreateNamedRange(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		rq := sheets.BatchUpdateSpreadsheetRequest{}
		decodeBody(t, r, &rq)

		require.Len(t, rq.Requests, 1)
		add := rq.Requests[0].AddNamedRange
		require.NotNil(t, add)
		assert.Equal(t, "prices", add.NamedRange.Name)
		assert.Equal(t, int64(0), add.NamedRange.Range.StartRowIndex)
		assert.Equal(t, int64(2), add.NamedRange.Range.EndRowIndex)

		respondJSON(w, `{
          "replies": [
            {
              "addNamedRange": {
                "namedRange": {
                  "namedRangeId": "nr2",
                  "name": "prices",
                  "range": { "sheetId": 0, "startRowIndex": 0, "endRowIndex": 2, "startColumnIndex": 0, "endColumnIndex": 2 }
                }
              }
            }
          ]
        }`)
	})

	ctx := context.Background()

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, "Summer")
	require.NoError(t, err)

	drange, err := worksheet.CreateNamedRange(ctx, "prices", a1.Cell(1, 1), a1.Cell(2, 2))
	require.NoError(t, err)

	assert.Equal(t, "prices", drange.Name())
	assert.Len(t, spreadsheet.NamedRanges(), 2)
}

func TestDeleteNamedRange(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		rq := sheets.BatchUpdateSpreadsheetRequest{}
		decodeBody(t, r, &rq)

		require.Len(t, rq.Requests, 1)
		del := rq.Requests[0].DeleteNamedRange
		require.NotNil(t, del)
		assert.Equal(t, "nr1", del.NamedRangeId)

		respondJSON(w, `{}`)
	})

	ctx := context.Background()

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, "Summer")
	require.NoError(t, err)

	require.NoError(t, worksheet.DeleteNamedRange(ctx, "stations"))
	assert.Empty(t, spreadsheet.NamedRanges())
}

func TestReplace(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		rq := sheets.BatchUpdateSpreadsheetRequest{}
		decodeBody(t, r, &rq)

		require.Len(t, rq.Requests, 1)
		fr := rq.Requests[0].FindReplace
		require.NotNil(t, fr)
		assert.Equal(t, "colour", fr.Find)
		assert.Equal(t, "color", fr.Replacement)
		assert.True(t, fr.AllSheets)

		respondJSON(w, `{ "replies": [ { "findReplace": { "occurrencesChanged": 3 } } ] }`)
	})

	changed, err := spreadsheet.Replace(context.Background(), FindReplace{
		Find:        "colour",
		Replacement: "color",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)
}

func TestReplaceWithinRange(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		rq := sheets.BatchUpdateSpreadsheetRequest{}
		decodeBody(t, r, &rq)

		fr := rq.Requests[0].FindReplace
		require.NotNil(t, fr)
		require.NotNil(t, fr.Range)
		assert.Equal(t, int64(1), fr.Range.SheetId)
		assert.False(t, fr.AllSheets)

		respondJSON(w, `{ "replies": [ { "findReplace": {} } ] }`)
	})

	changed, err := spreadsheet.Replace(context.Background(), FindReplace{
		Find:        "colour",
		Replacement: "color",
		Range:       "Winter!A1:B4",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}

func TestReplaceWithinFirstWorksheet(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// sheet id 0 is a real restriction, not "all sheets"
		assert.Contains(t, string(body), `"sheetId":0`)
		assert.NotContains(t, string(body), `"allSheets"`)

		respondJSON(w, `{ "replies": [ { "findReplace": { "occurrencesChanged": 1 } } ] }`)
	})

	sheetID := int64(0)
	changed, err := spreadsheet.Replace(context.Background(), FindReplace{
		Find:        "colour",
		Replacement: "color",
		SheetID:     &sheetID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)
}

func TestCreate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v4/spreadsheets", r.URL.Path)

		body := sheets.Spreadsheet{}
		decodeBody(t, r, &body)
		assert.Equal(t, "Beaches", body.Properties.Title)

		respondJSON(w, `{
          "spreadsheetId": "new-key",
          "properties": { "title": "Beaches" },
          "sheets": [ { "properties": { "sheetId": 0, "title": "Sheet1", "index": 0, "gridProperties": { "rowCount": 1000, "columnCount": 26 } } } ]
        }`)
	}))

	spreadsheet, err := client.Create(context.Background(), "Beaches")
	require.NoError(t, err)

	assert.Equal(t, "new-key", spreadsheet.ID())
	assert.Len(t, spreadsheet.Worksheets(), 1)
}
