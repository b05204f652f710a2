package sheet

import (
	"context"
	"fmt"

	"gsheets/a1"

	"google.golang.org/api/sheets/v4"
)

// DataRange is the local model of a rectangular block of cells, optionally
// backed by a named range or a protected range on the service.
type DataRange struct {
	worksheet *Worksheet
	start     a1.Address
	end       a1.Address
	data      [][]*Cell

	name      string
	nameID    string
	protectID int64
	protected bool
	editors   []string

	linked bool
}

// Borders selects the edges to draw when updating the borders of a range.
type Borders struct {
	Top             bool
	Right           bool
	Bottom          bool
	Left            bool
	InnerHorizontal bool
	InnerVertical   bool
	Style           string
	Width           int64
	Color           *sheets.Color
}

func newDataRange(w *Worksheet, start, end a1.Address, data [][]*Cell) *DataRange {
	return &DataRange{
		worksheet: w,
		start:     start,
		end:       end,
		data:      data,
		linked:    true,
	}
}

// newNamedRange builds a DataRange from an API named range resource.
func newNamedRange(w *Worksheet, nr *sheets.NamedRange) *DataRange {
	r := a1.FromGridRange(nr.Range)

	drange := newDataRange(w, r.Start, r.End, nil)
	drange.name = nr.Name
	drange.nameID = nr.NamedRangeId

	return drange
}

// newProtectedRange builds a DataRange from an API protected range resource.
func newProtectedRange(w *Worksheet, pr *sheets.ProtectedRange) *DataRange {
	r := a1.FromGridRange(pr.Range)

	drange := newDataRange(w, r.Start, r.End, nil)
	drange.protectID = pr.ProtectedRangeId
	drange.protected = true

	if pr.Editors != nil {
		drange.editors = pr.Editors.Users
	}

	return drange
}

// Worksheet is the worksheet this range lies on.
func (d *DataRange) Worksheet() *Worksheet {
	return d.worksheet
}

// Start is the top left address of the range.
func (d *DataRange) Start() a1.Address {
	return d.start
}

// End is the bottom right address of the range.
func (d *DataRange) End() a1.Address {
	return d.end
}

// Name is the named-range name ("" for an anonymous range).
func (d *DataRange) Name() string {
	return d.name
}

// Protected reports whether the range is protected against edits.
func (d *DataRange) Protected() bool {
	return d.protected
}

// ProtectedID is the protected range id (0 when unprotected).
func (d *DataRange) ProtectedID() int64 {
	return d.protectID
}

// Editors lists the users allowed to edit a protected range.
func (d *DataRange) Editors() []string {
	return d.editors
}

// Label is the A1 label of the range, qualified with the worksheet title.
func (d *DataRange) Label() string {
	return d.worksheet.rangeLabel(d.start, d.end)
}

// Height is the number of rows in the range.
func (d *DataRange) Height() int {
	return d.end.Row - d.start.Row + 1
}

// Width is the number of columns in the range.
func (d *DataRange) Width() int {
	return d.end.Col - d.start.Col + 1
}

func (d *DataRange) gridRange() *sheets.GridRange {
	r, _ := a1.NewRange(d.start, d.end)
	r.SheetID = d.worksheet.ID()

	return r.GridRange()
}

// Cells returns the cells of the range, fetching them on first use.
func (d *DataRange) Cells(ctx context.Context) ([][]*Cell, error) {
	if d.data == nil {
		data, err := d.worksheet.Cells(ctx, d.Label())
		if err != nil {
			return nil, err
		}

		d.data = data

		if !d.linked {
			for _, row := range d.data {
				for _, cell := range row {
					cell.Unlink()
				}
			}
		}
	}

	return d.data, nil
}

// Values returns the formatted values of the range.
func (d *DataRange) Values(ctx context.Context) ([][]string, error) {
	return d.worksheet.Values(ctx, d.Label())
}

// UpdateValues writes a matrix of values covering the range.
func (d *DataRange) UpdateValues(ctx context.Context, values [][]interface{}) error {
	if err := d.worksheet.UpdateValues(ctx, d.Label(), values); err != nil {
		return err
	}

	d.data = nil

	return nil
}

// Clear clears the values of the range.
func (d *DataRange) Clear(ctx context.Context) error {
	if err := d.worksheet.Clear(ctx, d.Label(), "userEnteredValue"); err != nil {
		return err
	}

	d.data = nil

	return nil
}

// SetName names the range, creating or renaming the backing named range.
// An empty name deletes it.
func (d *DataRange) SetName(ctx context.Context, name string) error {
	if name == "" {
		return d.deleteNamedRange(ctx)
	}

	w := d.worksheet

	if d.nameID == "" {
		response, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
			AddNamedRange: &sheets.AddNamedRangeRequest{
				NamedRange: &sheets.NamedRange{
					Name:  name,
					Range: d.gridRange(),
				},
			},
		})
		if err != nil {
			return err
		}

		d.name = name

		if response != nil {
			nr := response.Replies[0].AddNamedRange.NamedRange
			d.nameID = nr.NamedRangeId
			w.spreadsheet.resource.NamedRanges = append(w.spreadsheet.resource.NamedRanges, nr)
		}

		return nil
	}

	if _, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		UpdateNamedRange: &sheets.UpdateNamedRangeRequest{
			NamedRange: &sheets.NamedRange{
				NamedRangeId: d.nameID,
				Name:         name,
				Range:        d.gridRange(),
			},
			Fields: "name",
		},
	}); err != nil {
		return err
	}

	d.name = name

	return nil
}

func (d *DataRange) deleteNamedRange(ctx context.Context) error {
	if d.nameID == "" {
		return fmt.Errorf("range '%s' is not named: %w", d.Label(), ErrRangeNotFound)
	}

	w := d.worksheet

	if _, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		DeleteNamedRange: &sheets.DeleteNamedRangeRequest{
			NamedRangeId: d.nameID,
		},
	}); err != nil {
		return err
	}

	remaining := []*sheets.NamedRange{}
	for _, nr := range w.spreadsheet.resource.NamedRanges {
		if nr.NamedRangeId != d.nameID {
			remaining = append(remaining, nr)
		}
	}

	w.spreadsheet.resource.NamedRanges = remaining
	d.name = ""
	d.nameID = ""

	return nil
}

// Protect protects or unprotects the range against edits by anyone but the
// owner and the listed editors.
func (d *DataRange) Protect(ctx context.Context, protect bool) error {
	w := d.worksheet

	if protect && !d.protected {
		pr := sheets.ProtectedRange{
			Range: d.gridRange(),
		}

		if len(d.editors) > 0 {
			pr.Editors = &sheets.Editors{Users: d.editors}
		}

		response, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
			AddProtectedRange: &sheets.AddProtectedRangeRequest{
				ProtectedRange: &pr,
			},
		})
		if err != nil {
			return err
		}

		d.protected = true

		if response != nil {
			d.protectID = response.Replies[0].AddProtectedRange.ProtectedRange.ProtectedRangeId
		}

		return nil
	}

	if !protect && d.protected {
		if err := w.RemoveProtectedRange(ctx, d.protectID); err != nil {
			return err
		}

		d.protected = false
		d.protectID = 0
	}

	return nil
}

// SetEditors sets the users allowed to edit the protected range.
func (d *DataRange) SetEditors(ctx context.Context, users []string) error {
	d.editors = users

	if !d.protected {
		return nil
	}

	w := d.worksheet

	_, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		UpdateProtectedRange: &sheets.UpdateProtectedRangeRequest{
			ProtectedRange: &sheets.ProtectedRange{
				ProtectedRangeId: d.protectID,
				Editors:          &sheets.Editors{Users: users},
			},
			Fields: "editors",
		},
	})

	return err
}

// ApplyFormat sets the number format of every cell in the range.
func (d *DataRange) ApplyFormat(ctx context.Context, format FormatType, pattern string) error {
	w := d.worksheet

	_, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: d.gridRange(),
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					NumberFormat: &sheets.NumberFormat{
						Type:    string(format),
						Pattern: pattern,
					},
				},
			},
			Fields: "userEnteredFormat/numberFormat",
		},
	})

	return err
}

// Merge merges the cells of the range. MergeType is "MERGE_ALL",
// "MERGE_COLUMNS" or "MERGE_ROWS".
func (d *DataRange) Merge(ctx context.Context, mergeType string) error {
	w := d.worksheet

	_, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		MergeCells: &sheets.MergeCellsRequest{
			Range:     d.gridRange(),
			MergeType: mergeType,
		},
	})

	return err
}

// Unmerge splits any merged cells in the range.
func (d *DataRange) Unmerge(ctx context.Context) error {
	w := d.worksheet

	_, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		UnmergeCells: &sheets.UnmergeCellsRequest{
			Range: d.gridRange(),
		},
	})

	return err
}

// UpdateBorders draws the selected borders of the range.
func (d *DataRange) UpdateBorders(ctx context.Context, borders Borders) error {
	w := d.worksheet

	border := func(selected bool) *sheets.Border {
		if !selected {
			return nil
		}

		return &sheets.Border{
			Style: borders.Style,
			Width: borders.Width,
			Color: borders.Color,
		}
	}

	_, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		UpdateBorders: &sheets.UpdateBordersRequest{
			Range:           d.gridRange(),
			Top:             border(borders.Top),
			Right:           border(borders.Right),
			Bottom:          border(borders.Bottom),
			Left:            border(borders.Left),
			InnerHorizontal: border(borders.InnerHorizontal),
			InnerVertical:   border(borders.InnerVertical),
		},
	})

	return err
}

// Sort sorts the range on one of its columns (0 is the leftmost column of
// the range). Order is "ASCENDING" or "DESCENDING".
func (d *DataRange) Sort(ctx context.Context, column int, order string) error {
	if err := d.worksheet.Sort(ctx, d.Label(), column, order); err != nil {
		return err
	}

	d.data = nil

	return nil
}

// Link relinks the range and its fetched cells. With syncToCloud set the
// cells push their local state to the service.
func (d *DataRange) Link(ctx context.Context, syncToCloud bool) error {
	d.linked = true

	for _, row := range d.data {
		for _, cell := range row {
			if err := cell.Link(ctx, syncToCloud); err != nil {
				return err
			}
		}
	}

	return nil
}

// Unlink detaches the range and its fetched cells.
func (d *DataRange) Unlink() {
	d.linked = false

	for _, row := range d.data {
		for _, cell := range row {
			cell.Unlink()
		}
	}
}

func (d *DataRange) String() string {
	if d.name != "" {
		return fmt.Sprintf("<DataRange %s %s>", d.name, d.Label())
	}

	return fmt.Sprintf("<DataRange %s>", d.Label())
}
