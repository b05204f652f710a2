package sheet

import (
	"context"
	"fmt"
	"io"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// Spreadsheet is the local model of a spreadsheet resource. It owns its
// worksheets - they are created and destroyed through it - and holds the
// default parse mode and the batch mode switch for all of them.
type Spreadsheet struct {
	client   *Client
	resource *sheets.Spreadsheet

	worksheets []*Worksheet

	// parse is the default value input mode: true stores values as if
	// typed into the UI (USER_ENTERED), false stores them as-is (RAW).
	parse bool
}

func newSpreadsheet(c *Client, resource *sheets.Spreadsheet) *Spreadsheet {
	s := Spreadsheet{
		client:   c,
		resource: resource,
		parse:    true,
	}

	s.rebuildWorksheets()

	return &s
}

func (s *Spreadsheet) rebuildWorksheets() {
	s.worksheets = make([]*Worksheet, 0, len(s.resource.Sheets))
	for _, resource := range s.resource.Sheets {
		s.worksheets = append(s.worksheets, newWorksheet(s, resource))
	}
}

// ID is the spreadsheet key as it appears in a browser URL.
func (s *Spreadsheet) ID() string {
	return s.resource.SpreadsheetId
}

// Title is the spreadsheet title.
func (s *Spreadsheet) Title() string {
	if s.resource.Properties != nil {
		return s.resource.Properties.Title
	}

	return ""
}

// URL is the browser URL of the spreadsheet.
func (s *Spreadsheet) URL() string {
	return s.resource.SpreadsheetUrl
}

// DefaultFormat is the default cell format of the spreadsheet.
func (s *Spreadsheet) DefaultFormat() *sheets.CellFormat {
	if s.resource.Properties != nil {
		return s.resource.Properties.DefaultFormat
	}

	return nil
}

// SetDefaultParse sets the default value input mode for all value writes
// through this spreadsheet's worksheets.
func (s *Spreadsheet) SetDefaultParse(parse bool) {
	s.parse = parse
}

// Updated returns the last time the spreadsheet was modified.
func (s *Spreadsheet) Updated(ctx context.Context) (time.Time, error) {
	return s.client.ModifiedTime(ctx, s.ID())
}

// Refresh refetches the spreadsheet resource and rebuilds the worksheet
// list from it.
func (s *Spreadsheet) Refresh(ctx context.Context) error {
	resource, err := s.client.fetch(ctx, s.ID(), "", false)
	if err != nil {
		return err
	}

	s.resource = resource
	s.rebuildWorksheets()

	return nil
}

// Worksheets returns all worksheets of the spreadsheet.
func (s *Spreadsheet) Worksheets() []*Worksheet {
	return s.worksheets
}

// Worksheet returns the worksheet at the given position (0 is the first,
// leftmost worksheet).
func (s *Spreadsheet) Worksheet(ctx context.Context, index int) (*Worksheet, error) {
	return s.findWorksheet(ctx, func(w *Worksheet) bool { return w.Index() == index })
}

// WorksheetByID returns the worksheet with the given sheet id.
func (s *Spreadsheet) WorksheetByID(ctx context.Context, id int64) (*Worksheet, error) {
	return s.findWorksheet(ctx, func(w *Worksheet) bool { return w.ID() == id })
}

// WorksheetByTitle returns the first worksheet with the given title.
func (s *Spreadsheet) WorksheetByTitle(ctx context.Context, title string) (*Worksheet, error) {
	return s.findWorksheet(ctx, func(w *Worksheet) bool { return w.Title() == title })
}

// findWorksheet looks for a matching worksheet in the local list, refetching
// the list once on a miss in case it is stale.
func (s *Spreadsheet) findWorksheet(ctx context.Context, match func(*Worksheet) bool) (*Worksheet, error) {
	for _, fetch := range []bool{false, true} {
		if fetch {
			if err := s.Refresh(ctx); err != nil {
				return nil, err
			}
		}

		for _, w := range s.worksheets {
			if match(w) {
				return w, nil
			}
		}
	}

	return nil, ErrWorksheetNotFound
}

// AddWorksheet adds a new worksheet with the given title and extents.
func (s *Spreadsheet) AddWorksheet(ctx context.Context, title string, rows, cols int) (*Worksheet, error) {
	if s.client.InBatch(s.ID()) {
		return nil, fmt.Errorf("add worksheet: %w", ErrBatchMode)
	}

	response, err := s.client.batchUpdate(ctx, s.ID(), &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: title,
				GridProperties: &sheets.GridProperties{
					RowCount:    int64(rows),
					ColumnCount: int64(cols),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	properties := response.Replies[0].AddSheet.Properties
	worksheet := newWorksheet(s, &sheets.Sheet{Properties: properties})
	s.worksheets = append(s.worksheets, worksheet)

	return worksheet, nil
}

// AddWorksheetCopy copies a worksheet (possibly from another spreadsheet)
// into this spreadsheet under a new title.
func (s *Spreadsheet) AddWorksheetCopy(ctx context.Context, src *Worksheet, title string) (*Worksheet, error) {
	if s.client.InBatch(s.ID()) {
		return nil, fmt.Errorf("add worksheet: %w", ErrBatchMode)
	}

	properties, err := s.client.copySheetTo(ctx, src.spreadsheet.ID(), src.ID(), s.ID())
	if err != nil {
		return nil, err
	}

	worksheet := newWorksheet(s, &sheets.Sheet{Properties: properties})
	s.worksheets = append(s.worksheets, worksheet)

	if err := worksheet.SetTitle(ctx, title); err != nil {
		return nil, err
	}

	return worksheet, nil
}

// DeleteWorksheet deletes a worksheet from the spreadsheet.
func (s *Spreadsheet) DeleteWorksheet(ctx context.Context, worksheet *Worksheet) error {
	found := false
	for _, w := range s.worksheets {
		if w.ID() == worksheet.ID() {
			found = true
		}
	}

	if !found {
		return ErrWorksheetNotFound
	}

	if _, err := s.client.batchUpdate(ctx, s.ID(), &sheets.Request{
		DeleteSheet: &sheets.DeleteSheetRequest{SheetId: worksheet.ID()},
	}); err != nil {
		return err
	}

	remaining := s.worksheets[:0]
	for _, w := range s.worksheets {
		if w.ID() != worksheet.ID() {
			remaining = append(remaining, w)
		}
	}

	s.worksheets = remaining

	return nil
}

// NamedRanges returns all named ranges of the spreadsheet as data ranges.
func (s *Spreadsheet) NamedRanges() []*DataRange {
	ranges := []*DataRange{}
	for _, nr := range s.resource.NamedRanges {
		for _, w := range s.worksheets {
			if nr.Range != nil && w.ID() == nr.Range.SheetId {
				ranges = append(ranges, newNamedRange(w, nr))
			}
		}
	}

	return ranges
}

// FindReplace describes a find/replace over the spreadsheet.
type FindReplace struct {
	Find            string
	Replacement     string
	MatchCase       bool
	MatchEntireCell bool
	Regex           bool
	IncludeFormulas bool

	// Range restricts the search; SheetID restricts it to one worksheet
	// (sheet id 0 is the first worksheet). With neither set, all sheets are
	// searched.
	Range   string
	SheetID *int64
}

// Replace runs a find/replace across the spreadsheet and returns the number
// of occurrences changed. In batch mode the request is queued and the count
// is zero.
func (s *Spreadsheet) Replace(ctx context.Context, fr FindReplace) (int64, error) {
	rq := sheets.FindReplaceRequest{
		Find:            fr.Find,
		Replacement:     fr.Replacement,
		MatchCase:       fr.MatchCase,
		MatchEntireCell: fr.MatchEntireCell,
		SearchByRegex:   fr.Regex,
		IncludeFormulas: fr.IncludeFormulas,
	}

	switch {
	case fr.Range != "":
		w, err := s.WorksheetByTitle(ctx, rangeTitle(fr.Range))
		if err != nil {
			return 0, err
		}

		grange, err := w.gridRange(fr.Range)
		if err != nil {
			return 0, err
		}

		rq.Range = grange

	case fr.SheetID != nil:
		rq.SheetId = *fr.SheetID
		rq.ForceSendFields = []string{"SheetId"}

	default:
		rq.AllSheets = true
	}

	response, err := s.client.batchUpdate(ctx, s.ID(), &sheets.Request{FindReplace: &rq})
	if err != nil {
		return 0, err
	}

	if response == nil || len(response.Replies) == 0 || response.Replies[0].FindReplace == nil {
		return 0, nil
	}

	return response.Replies[0].FindReplace.OccurrencesChanged, nil
}

// Share creates a permission for a user, group, domain or anyone.
func (s *Spreadsheet) Share(ctx context.Context, address, ptype, role string) (*drive.Permission, error) {
	return s.client.Share(ctx, s.ID(), address, ptype, role)
}

// Permissions lists the permissions on the spreadsheet.
func (s *Spreadsheet) Permissions(ctx context.Context) ([]*drive.Permission, error) {
	return s.client.Permissions(ctx, s.ID())
}

// RemovePermissions removes all permissions granted to an email or domain.
func (s *Spreadsheet) RemovePermissions(ctx context.Context, address string) error {
	return s.client.RemovePermission(ctx, s.ID(), address)
}

// BatchStart turns on batch mode: all mutations to this spreadsheet and its
// worksheets accumulate client-side until BatchStop.
func (s *Spreadsheet) BatchStart() {
	s.client.BatchStart(s.ID())
}

// BatchStop flushes (or with discard set, drops) the mutations accumulated
// since BatchStart.
func (s *Spreadsheet) BatchStop(ctx context.Context, discard bool) error {
	return s.client.BatchStop(ctx, s.ID(), discard)
}

// ClearRanges clears the values of the given A1 ranges in a single call,
// leaving formats and notes intact.
func (s *Spreadsheet) ClearRanges(ctx context.Context, ranges ...string) error {
	return s.client.clearValues(ctx, s.ID(), ranges)
}

// CustomRequest sends raw batch update requests for the spreadsheet,
// bypassing the local models but honouring batch mode.
func (s *Spreadsheet) CustomRequest(ctx context.Context, requests ...*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	return s.client.batchUpdate(ctx, s.ID(), requests...)
}

// Export downloads the whole spreadsheet converted to the given format.
func (s *Spreadsheet) Export(ctx context.Context, format ExportFormat, w io.Writer) error {
	return s.client.Export(ctx, s.ID(), format, w)
}

func (s *Spreadsheet) String() string {
	return fmt.Sprintf("<Spreadsheet %q sheets:%d>", s.Title(), len(s.worksheets))
}
