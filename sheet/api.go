package sheet

import (
	"context"

	"gsheets/a1"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// The functions in this file are the only paths to the Sheets API - every
// model mutation funnels through batchUpdate/updateValues so that batch
// mode sees all of them.

// fetch retrieves the spreadsheet resource, optionally restricted to a
// field mask and/or including grid data for the given ranges.
func (c *Client) fetch(ctx context.Context, key, fields string, gridData bool, ranges ...string) (*sheets.Spreadsheet, error) {
	return call(ctx, c, "get spreadsheet", func() (*sheets.Spreadsheet, error) {
		rq := c.sheets.Spreadsheets.Get(key).IncludeGridData(gridData)
		if fields != "" {
			rq = rq.Fields(googleapi.Field(fields))
		}

		if len(ranges) > 0 {
			rq = rq.Ranges(ranges...)
		}

		return rq.Context(ctx).Do()
	})
}

// batchUpdate applies structural update requests to the spreadsheet. With
// batch mode active for the key the requests are queued instead and the
// response is nil.
func (c *Client) batchUpdate(ctx context.Context, key string, requests ...*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	if q := c.batches[key]; q != nil {
		q.requests = append(q.requests, requests...)
		return nil, nil
	}

	body := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	return call(ctx, c, "batch update", func() (*sheets.BatchUpdateSpreadsheetResponse, error) {
		return c.sheets.Spreadsheets.BatchUpdate(key, &body).Context(ctx).Do()
	})
}

// getValues reads a range of values rendered as requested.
func (c *Client) getValues(ctx context.Context, key, area string, dim Dimension, render ValueRender) (*sheets.ValueRange, error) {
	return call(ctx, c, "get values", func() (*sheets.ValueRange, error) {
		return c.sheets.Spreadsheets.Values.Get(key, area).
			MajorDimension(string(dim)).
			ValueRenderOption(string(render)).
			Context(ctx).
			Do()
	})
}

// updateValues writes a matrix of values to the range named by vr.Range.
// With batch mode active the value range is queued. Updates larger than the
// API cell limit are split along the major dimension.
func (c *Client) updateValues(ctx context.Context, key string, vr *sheets.ValueRange, parse bool) error {
	if q := c.batches[key]; q != nil {
		q.values = append(q.values, vr)
		q.parse = parse
		return nil
	}

	for _, chunk := range splitValueRange(vr, cellUpdateLimit) {
		rq := chunk
		if _, err := call(ctx, c, "update values", func() (*sheets.UpdateValuesResponse, error) {
			return c.sheets.Spreadsheets.Values.Update(key, rq.Range, rq).
				ValueInputOption(valueInput(parse)).
				Context(ctx).
				Do()
		}); err != nil {
			return err
		}
	}

	return nil
}

// appendValues appends rows after the table found within the given range.
func (c *Client) appendValues(ctx context.Context, key, area string, vr *sheets.ValueRange, overwrite bool) error {
	insert := "INSERT_ROWS"
	if overwrite {
		insert = "OVERWRITE"
	}

	_, err := call(ctx, c, "append values", func() (*sheets.AppendValuesResponse, error) {
		return c.sheets.Spreadsheets.Values.Append(key, area, vr).
			ValueInputOption("USER_ENTERED").
			InsertDataOption(insert).
			Context(ctx).
			Do()
	})

	return err
}

// clearValues clears the values (and only the values) of the given ranges.
func (c *Client) clearValues(ctx context.Context, key string, ranges []string) error {
	body := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	_, err := call(ctx, c, "clear values", func() (*sheets.BatchClearValuesResponse, error) {
		return c.sheets.Spreadsheets.Values.BatchClear(key, &body).Context(ctx).Do()
	})

	return err
}

// updateSheetProperties pushes the given fields of the worksheet properties.
func (c *Client) updateSheetProperties(ctx context.Context, key string, properties *sheets.SheetProperties, fields string) error {
	_, err := c.batchUpdate(ctx, key, &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: properties,
			Fields:     fields,
		},
	})

	return err
}

// copySheetTo copies a worksheet into another spreadsheet and returns the
// properties of the copy.
func (c *Client) copySheetTo(ctx context.Context, srcKey string, sheetID int64, dstKey string) (*sheets.SheetProperties, error) {
	body := sheets.CopySheetToAnotherSpreadsheetRequest{
		DestinationSpreadsheetId: dstKey,
	}

	return call(ctx, c, "copy worksheet", func() (*sheets.SheetProperties, error) {
		return c.sheets.Spreadsheets.Sheets.CopyTo(srcKey, sheetID, &body).Context(ctx).Do()
	})
}

func valueInput(parse bool) string {
	if parse {
		return "USER_ENTERED"
	}

	return "RAW"
}

// splitValueRange splits a value update into chunks of at most limit cells,
// adjusting the range of each chunk. Column-major updates are split along
// rows within each column slice.
func splitValueRange(vr *sheets.ValueRange, limit int) []*sheets.ValueRange {
	if len(vr.Values) == 0 {
		return []*sheets.ValueRange{vr}
	}

	width := 0
	for _, row := range vr.Values {
		if len(row) > width {
			width = len(row)
		}
	}

	if len(vr.Values)*width <= limit {
		return []*sheets.ValueRange{vr}
	}

	r, err := a1.ParseRange(vr.Range)
	if err != nil {
		return []*sheets.ValueRange{vr}
	}

	// grid rows and cells-per-row depend on the major dimension
	rows := len(vr.Values)
	perRow := width
	if vr.MajorDimension == string(Columns) {
		rows = width
		perRow = len(vr.Values)
	}

	if perRow > limit {
		return []*sheets.ValueRange{vr}
	}

	chunkRows := limit / perRow
	chunks := []*sheets.ValueRange{}

	for start := 0; start < rows; start += chunkRows {
		end := start + chunkRows
		if end > rows {
			end = rows
		}

		values := [][]interface{}{}
		if vr.MajorDimension == string(Columns) {
			for _, col := range vr.Values {
				if start >= len(col) {
					values = append(values, []interface{}{})
				} else if end > len(col) {
					values = append(values, col[start:])
				} else {
					values = append(values, col[start:end])
				}
			}
		} else {
			values = vr.Values[start:end]
		}

		area := r
		area.Start.Row = r.Start.Row + start
		area.End.Row = r.Start.Row + end - 1

		chunks = append(chunks, &sheets.ValueRange{
			Range:          area.Label(),
			MajorDimension: vr.MajorDimension,
			Values:         values,
		})
	}

	return chunks
}
