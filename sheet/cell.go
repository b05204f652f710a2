package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gsheets/a1"

	"google.golang.org/api/sheets/v4"
)

// Cell is the local model of a single grid cell. It carries the formatted
// value, the unformatted (effective) value, the formula and the note, plus
// the number format.
//
// A linked cell pushes mutations to the service as they are made; an
// unlinked cell accumulates them locally until Link.
type Cell struct {
	worksheet *Worksheet
	addr      a1.Address

	value       string
	unformatted interface{}
	formula     string
	note        string
	format      FormatType
	pattern     string

	linked bool
	parse  *bool
}

func newCell(w *Worksheet, addr a1.Address) *Cell {
	return &Cell{
		worksheet: w,
		addr:      addr,
		format:    FormatNone,
		linked:    true,
	}
}

// Row is the 1-based row of the cell.
func (c *Cell) Row() int {
	return c.addr.Row
}

// Col is the 1-based column of the cell.
func (c *Cell) Col() int {
	return c.addr.Col
}

// Address is the cell address.
func (c *Cell) Address() a1.Address {
	return c.addr
}

// Label is the A1 label of the cell.
func (c *Cell) Label() string {
	return c.addr.Label()
}

// Value is the formatted value of the cell.
func (c *Cell) Value() string {
	return c.value
}

// UnformattedValue is the effective value of the cell, as a string, float64
// or bool.
func (c *Cell) UnformattedValue() interface{} {
	return c.unformatted
}

// Formula is the formula of the cell ("" when the cell holds a plain value).
func (c *Cell) Formula() string {
	return c.formula
}

// Note is the note attached to the cell.
func (c *Cell) Note() string {
	return c.note
}

// Format is the number format of the cell.
func (c *Cell) Format() (FormatType, string) {
	return c.format, c.pattern
}

// SetAddress moves the cell to addr. A linked cell is refetched so that it
// reflects the canonical cell at the new address.
func (c *Cell) SetAddress(ctx context.Context, addr a1.Address) error {
	if addr.Row < 1 || addr.Col < 1 {
		return fmt.Errorf("invalid cell address '%v' (%w)", addr, ErrCellNotFound)
	}

	c.addr = addr

	if c.linked {
		return c.Fetch(ctx)
	}

	return nil
}

// SetParse overrides the spreadsheet-level parse setting for this cell.
// With parse set values are interpreted as if typed into the UI, so that
// e.g. "=A1+B1" becomes a formula; without it they are stored as-is.
func (c *Cell) SetParse(parse bool) {
	c.parse = &parse
}

func (c *Cell) parseValue() bool {
	if c.parse != nil {
		return *c.parse
	}

	return c.worksheet.spreadsheet.parse
}

// Link relinks the cell. With syncToCloud set the local state is pushed to
// the service; otherwise it is refreshed from it.
func (c *Cell) Link(ctx context.Context, syncToCloud bool) error {
	c.linked = true

	if syncToCloud {
		return c.push(ctx)
	}

	return c.Fetch(ctx)
}

// Unlink detaches the cell: mutations stay local until Link.
func (c *Cell) Unlink() {
	c.linked = false
}

// Fetch refreshes the cell from the service.
func (c *Cell) Fetch(ctx context.Context) error {
	if !c.linked {
		return fmt.Errorf("cell %s: %w", c.addr.Label(), ErrNotLinked)
	}

	w := c.worksheet
	area := w.rangeLabel(c.addr, c.addr)

	resource, err := w.client.fetch(ctx, w.spreadsheet.ID(), "sheets(data(rowData(values(formattedValue,effectiveValue,userEnteredValue,note,userEnteredFormat))),properties(sheetId))",
		true, area)
	if err != nil {
		return err
	}

	for _, sh := range resource.Sheets {
		if len(sh.Data) > 0 && len(sh.Data[0].RowData) > 0 && len(sh.Data[0].RowData[0].Values) > 0 {
			c.setData(sh.Data[0].RowData[0].Values[0])
			return nil
		}
	}

	// empty cell
	c.setData(&sheets.CellData{})

	return nil
}

// setData populates the cell from the API grid data.
func (c *Cell) setData(data *sheets.CellData) {
	c.value = data.FormattedValue
	c.unformatted = extendedValue(data.EffectiveValue)
	c.formula = ""
	c.note = data.Note
	c.format = FormatNone
	c.pattern = ""

	if data.UserEnteredValue != nil && data.UserEnteredValue.FormulaValue != nil {
		c.formula = *data.UserEnteredValue.FormulaValue
	}

	if data.UserEnteredFormat != nil && data.UserEnteredFormat.NumberFormat != nil {
		c.format = FormatType(data.UserEnteredFormat.NumberFormat.Type)
		c.pattern = data.UserEnteredFormat.NumberFormat.Pattern
	}
}

// SetValue sets the value of the cell.
func (c *Cell) SetValue(ctx context.Context, value string) error {
	c.value = value
	c.formula = ""
	c.unformatted = Numericise(value)

	if !c.linked {
		return nil
	}

	return c.pushValue(ctx, value)
}

// SetFormula sets the formula of the cell (e.g. "=SUM(A1:A4)"). A missing
// leading "=" is supplied.
func (c *Cell) SetFormula(ctx context.Context, formula string) error {
	if !strings.HasPrefix(formula, "=") {
		formula = "=" + formula
	}

	c.formula = formula

	if !c.linked {
		return nil
	}

	// formulas only take effect with parsing on
	w := c.worksheet
	vr := sheets.ValueRange{
		Range:          w.rangeLabel(c.addr, c.addr),
		MajorDimension: string(Rows),
		Values:         [][]interface{}{{formula}},
	}

	if err := w.client.updateValues(ctx, w.spreadsheet.ID(), &vr, true); err != nil {
		return err
	}

	if w.client.InBatch(w.spreadsheet.ID()) {
		return nil
	}

	return c.Fetch(ctx)
}

// SetNote sets the note attached to the cell.
func (c *Cell) SetNote(ctx context.Context, note string) error {
	c.note = note

	if !c.linked {
		return nil
	}

	return c.pushFields(ctx, "note")
}

// SetFormat sets the number format of the cell.
func (c *Cell) SetFormat(ctx context.Context, format FormatType, pattern string) error {
	c.format = format
	c.pattern = pattern

	if !c.linked {
		return nil
	}

	return c.pushFields(ctx, "userEnteredFormat/numberFormat")
}

// Neighbour returns the cell at the given offset from this one.
func (c *Cell) Neighbour(ctx context.Context, rows, cols int) (*Cell, error) {
	addr, err := c.addr.Translate(rows, cols)
	if err != nil {
		return nil, err
	}

	return c.worksheet.Cell(ctx, addr)
}

// push writes the whole local state of the cell to the service.
func (c *Cell) push(ctx context.Context) error {
	if c.formula != "" {
		if err := c.SetFormula(ctx, c.formula); err != nil {
			return err
		}
	} else if err := c.pushValue(ctx, c.value); err != nil {
		return err
	}

	return c.pushFields(ctx, "note,userEnteredFormat/numberFormat")
}

func (c *Cell) pushValue(ctx context.Context, value string) error {
	w := c.worksheet
	vr := sheets.ValueRange{
		Range:          w.rangeLabel(c.addr, c.addr),
		MajorDimension: string(Rows),
		Values:         [][]interface{}{{value}},
	}

	return w.client.updateValues(ctx, w.spreadsheet.ID(), &vr, c.parseValue())
}

// pushFields writes the given cell fields via an updateCells request.
func (c *Cell) pushFields(ctx context.Context, fields string) error {
	w := c.worksheet

	r, err := a1.NewRange(c.addr, c.addr)
	if err != nil {
		return err
	}

	r.SheetID = w.ID()

	data := sheets.CellData{
		Note: c.note,
	}

	if c.format != FormatNone || c.pattern != "" {
		data.UserEnteredFormat = &sheets.CellFormat{
			NumberFormat: &sheets.NumberFormat{
				Type:    string(c.format),
				Pattern: c.pattern,
			},
		}
	}

	_, err = w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		UpdateCells: &sheets.UpdateCellsRequest{
			Range:  r.GridRange(),
			Fields: fields,
			Rows: []*sheets.RowData{
				{Values: []*sheets.CellData{&data}},
			},
		},
	})

	return err
}

func (c *Cell) String() string {
	return fmt.Sprintf("<Cell %s %s>", c.Label(), strconv.Quote(c.value))
}

// extendedValue unwraps an API ExtendedValue into a plain Go value.
func extendedValue(v *sheets.ExtendedValue) interface{} {
	switch {
	case v == nil:
		return nil
	case v.NumberValue != nil:
		return *v.NumberValue
	case v.BoolValue != nil:
		return *v.BoolValue
	case v.StringValue != nil:
		return *v.StringValue
	case v.FormulaValue != nil:
		return *v.FormulaValue
	case v.ErrorValue != nil:
		return v.ErrorValue.Message
	default:
		return nil
	}
}
