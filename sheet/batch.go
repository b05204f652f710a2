package sheet

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// queue accumulates mutations for a spreadsheet while batch mode is active.
// Structural requests and value writes are kept as separate streams because
// they flush through different API endpoints; enqueue order is preserved
// within each stream.
type queue struct {
	requests []*sheets.Request
	values   []*sheets.ValueRange
	parse    bool
}

// BatchStart turns on batch mode for the spreadsheet: subsequent mutations
// accumulate client-side instead of being sent. Reads are never batched and
// will not see queued mutations.
func (c *Client) BatchStart(key string) {
	if _, ok := c.batches[key]; !ok {
		c.batches[key] = &queue{parse: true}
	}
}

// InBatch reports whether batch mode is active for the spreadsheet.
func (c *Client) InBatch(key string) bool {
	_, ok := c.batches[key]
	return ok
}

// BatchStop turns off batch mode and flushes the accumulated mutations -
// at most one spreadsheets.batchUpdate call for the structural requests and
// one values.batchUpdate call for the value writes, in that order. With
// discard set the queue is dropped unsent.
//
// The queue is cleared whether or not the flush succeeds; a failed flush
// fails atomically on the service side and the error is surfaced.
func (c *Client) BatchStop(ctx context.Context, key string, discard bool) error {
	q := c.batches[key]

	delete(c.batches, key)

	if q == nil || discard {
		return nil
	}

	if len(q.requests) > 0 {
		body := sheets.BatchUpdateSpreadsheetRequest{
			Requests: q.requests,
		}

		if _, err := call(ctx, c, "flush batch", func() (*sheets.BatchUpdateSpreadsheetResponse, error) {
			return c.sheets.Spreadsheets.BatchUpdate(key, &body).Context(ctx).Do()
		}); err != nil {
			return err
		}
	}

	if len(q.values) > 0 {
		body := sheets.BatchUpdateValuesRequest{
			ValueInputOption: valueInput(q.parse),
			Data:             q.values,
		}

		if _, err := call(ctx, c, "flush batch values", func() (*sheets.BatchUpdateValuesResponse, error) {
			return c.sheets.Spreadsheets.Values.BatchUpdate(key, &body).Context(ctx).Do()
		}); err != nil {
			return err
		}
	}

	return nil
}
