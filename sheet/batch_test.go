package sheet

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"

	"gsheets/a1"
)

func TestBatchQueuesMutations(t *testing.T) {
	calls := []string{}
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)

		switch r.URL.Path {
		case "/v4/spreadsheets/abc123:batchUpdate":
			rq := sheets.BatchUpdateSpreadsheetRequest{}
			decodeBody(t, r, &rq)
			require.Len(t, rq.Requests, 2)
			assert.NotNil(t, rq.Requests[0].UpdateSheetProperties)
			assert.NotNil(t, rq.Requests[1].UpdateDimensionProperties)

		case "/v4/spreadsheets/abc123/values:batchUpdate":
			rq := sheets.BatchUpdateValuesRequest{}
			decodeBody(t, r, &rq)
			assert.Equal(t, "USER_ENTERED", rq.ValueInputOption)
			require.Len(t, rq.Data, 2)
			assert.Equal(t, "'Summer'!A1:A1", rq.Data[0].Range)
			assert.Equal(t, "'Summer'!B2:B2", rq.Data[1].Range)

		default:
			t.Errorf("unexpected request %s", r.URL)
		}

		respondJSON(w, `{}`)
	})

	ctx := context.Background()

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, "Summer")
	require.NoError(t, err)

	spreadsheet.BatchStart()

	require.NoError(t, worksheet.Resize(ctx, 200, 30))
	require.NoError(t, worksheet.AdjustColumnWidth(ctx, 1, 3, 120))
	require.NoError(t, worksheet.UpdateValue(ctx, a1.Cell(1, 1), "a"))
	require.NoError(t, worksheet.UpdateValue(ctx, a1.Cell(2, 2), "b"))

	// nothing sent while the batch is open
	assert.Empty(t, calls)

	require.NoError(t, spreadsheet.BatchStop(ctx, false))

	// structural requests flush before values
	assert.Equal(t, []string{
		"/v4/spreadsheets/abc123:batchUpdate",
		"/v4/spreadsheets/abc123/values:batchUpdate",
	}, calls)
}

func TestBatchDiscard(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	ctx := context.Background()

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, "Summer")
	require.NoError(t, err)

	spreadsheet.BatchStart()

	require.NoError(t, worksheet.UpdateValue(ctx, a1.Cell(1, 1), "a"))
	require.NoError(t, spreadsheet.BatchStop(ctx, true))

	assert.False(t, spreadsheet.client.InBatch("abc123"))
}

func TestBatchStartIsIdempotent(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{}`)
	})

	ctx := context.Background()

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, "Summer")
	require.NoError(t, err)

	spreadsheet.BatchStart()
	require.NoError(t, worksheet.UpdateValue(ctx, a1.Cell(1, 1), "a"))

	// a second start must not drop the queue
	spreadsheet.BatchStart()
	assert.True(t, spreadsheet.client.InBatch("abc123"))

	require.NoError(t, spreadsheet.BatchStop(ctx, true))
}

func TestBatchStopWithoutStart(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	require.NoError(t, spreadsheet.BatchStop(context.Background(), false))
}

func TestBatchRejectsAddWorksheet(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	spreadsheet.BatchStart()
	t.Cleanup(func() { spreadsheet.BatchStop(context.Background(), true) })

	_, err := spreadsheet.AddWorksheet(context.Background(), "Autumn", 10, 5)
	assert.ErrorIs(t, err, ErrBatchMode)
}

func TestBatchRawValues(t *testing.T) {
	spreadsheet := newTestSpreadsheet(t, func(w http.ResponseWriter, r *http.Request) {
		rq := sheets.BatchUpdateValuesRequest{}
		decodeBody(t, r, &rq)
		assert.Equal(t, "RAW", rq.ValueInputOption)

		respondJSON(w, `{}`)
	})

	ctx := context.Background()

	spreadsheet.SetDefaultParse(false)

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, "Summer")
	require.NoError(t, err)

	spreadsheet.BatchStart()

	require.NoError(t, worksheet.UpdateValue(ctx, a1.Cell(1, 1), "=1+2"))
	require.NoError(t, spreadsheet.BatchStop(ctx, false))
}
