package sheet

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gsheets/a1"

	"google.golang.org/api/sheets/v4"
)

// Worksheet is the local model of a single sheet within a spreadsheet. It
// materialises Cell objects on demand and does not persist them; the only
// state it keeps beyond the sheet properties is an optional grid cache used
// by Find.
//
// A worksheet is normally linked: property mutations are pushed to the
// service as they are made. Unlink makes mutations local-only until Link.
type Worksheet struct {
	spreadsheet *Spreadsheet
	client      *Client
	resource    *sheets.Sheet

	linked      bool
	grid        [][]*Cell
	gridFetched time.Time
}

func newWorksheet(spreadsheet *Spreadsheet, resource *sheets.Sheet) *Worksheet {
	return &Worksheet{
		spreadsheet: spreadsheet,
		client:      spreadsheet.client,
		resource:    resource,
		linked:      true,
	}
}

// Spreadsheet is the spreadsheet this worksheet belongs to.
func (w *Worksheet) Spreadsheet() *Spreadsheet {
	return w.spreadsheet
}

// ID is the sheet id of the worksheet.
func (w *Worksheet) ID() int64 {
	return w.resource.Properties.SheetId
}

// Index is the position of the worksheet within the spreadsheet.
func (w *Worksheet) Index() int {
	return int(w.resource.Properties.Index)
}

// Title is the worksheet title.
func (w *Worksheet) Title() string {
	return w.resource.Properties.Title
}

// Rows is the number of rows in the worksheet grid.
func (w *Worksheet) Rows() int {
	return int(w.resource.Properties.GridProperties.RowCount)
}

// Cols is the number of columns in the worksheet grid.
func (w *Worksheet) Cols() int {
	return int(w.resource.Properties.GridProperties.ColumnCount)
}

// SetTitle renames the worksheet.
func (w *Worksheet) SetTitle(ctx context.Context, title string) error {
	w.resource.Properties.Title = title
	return w.pushProperties(ctx, "title")
}

// SetIndex moves the worksheet to the given position.
func (w *Worksheet) SetIndex(ctx context.Context, index int) error {
	w.resource.Properties.Index = int64(index)
	return w.pushProperties(ctx, "index")
}

// Resize sets the worksheet extents.
func (w *Worksheet) Resize(ctx context.Context, rows, cols int) error {
	w.resource.Properties.GridProperties.RowCount = int64(rows)
	w.resource.Properties.GridProperties.ColumnCount = int64(cols)

	return w.pushProperties(ctx, "gridProperties/rowCount,gridProperties/columnCount")
}

// AddRows grows the worksheet by the given number of rows.
func (w *Worksheet) AddRows(ctx context.Context, rows int) error {
	return w.Resize(ctx, w.Rows()+rows, w.Cols())
}

// AddCols grows the worksheet by the given number of columns.
func (w *Worksheet) AddCols(ctx context.Context, cols int) error {
	return w.Resize(ctx, w.Rows(), w.Cols()+cols)
}

func (w *Worksheet) pushProperties(ctx context.Context, fields string) error {
	if !w.linked {
		return nil
	}

	return w.client.updateSheetProperties(ctx, w.spreadsheet.ID(), w.resource.Properties, fields)
}

// Link relinks the worksheet. With syncToCloud set the local properties are
// pushed to the service; otherwise the local copy is refreshed from it.
func (w *Worksheet) Link(ctx context.Context, syncToCloud bool) error {
	w.linked = true

	if syncToCloud {
		return w.pushProperties(ctx, "*")
	}

	return w.Refresh(ctx)
}

// Unlink detaches the worksheet: property mutations stay local until Link.
func (w *Worksheet) Unlink() {
	w.linked = false
}

// Refresh refetches the sheet properties from the service.
func (w *Worksheet) Refresh(ctx context.Context) error {
	resource, err := w.client.fetch(ctx, w.spreadsheet.ID(), "", false)
	if err != nil {
		return err
	}

	for _, sh := range resource.Sheets {
		if sh.Properties.SheetId == w.ID() {
			w.resource = sh
			return nil
		}
	}

	return ErrWorksheetNotFound
}

// rangeLabel builds an A1 range label within this worksheet.
func (w *Worksheet) rangeLabel(start, end a1.Address) string {
	return fmt.Sprintf("'%s'!%s:%s", w.Title(), start.Label(), end.Label())
}

// gridRange parses an A1 range label (with or without a worksheet prefix)
// into the API GridRange shape bound to this worksheet.
func (w *Worksheet) gridRange(area string) (*sheets.GridRange, error) {
	r, err := a1.ParseRange(area)
	if err != nil {
		return nil, err
	}

	r.SheetID = w.ID()

	return r.GridRange(), nil
}

// Cell returns the cell at the given address, with its value, formula and
// note fetched.
func (w *Worksheet) Cell(ctx context.Context, addr a1.Address) (*Cell, error) {
	if !addr.Bounded() {
		return nil, fmt.Errorf("cell '%s': %w", addr.Label(), ErrCellNotFound)
	}

	if addr.Row > w.Rows() || addr.Col > w.Cols() {
		return nil, fmt.Errorf("cell '%s' exceeds grid limits: %w", addr.Label(), ErrCellNotFound)
	}

	cell := newCell(w, addr)
	if err := cell.Fetch(ctx); err != nil {
		return nil, err
	}

	return cell, nil
}

// Value returns the formatted value of the cell at the given address.
func (w *Worksheet) Value(ctx context.Context, addr a1.Address) (string, error) {
	values, err := w.ValuesWith(ctx, addr.Label()+":"+addr.Label(), Rows, Formatted)
	if err != nil {
		return "", err
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return "", nil
	}

	return values[0][0], nil
}

// Values returns the formatted values of the given range as a row-major
// matrix. Trailing empty rows and cells are trimmed by the service; rows
// are padded locally to equal length.
func (w *Worksheet) Values(ctx context.Context, area string) ([][]string, error) {
	return w.ValuesWith(ctx, area, Rows, Formatted)
}

// ValuesWith returns the values of the given range in the requested major
// dimension and render.
func (w *Worksheet) ValuesWith(ctx context.Context, area string, dim Dimension, render ValueRender) ([][]string, error) {
	vr, err := w.client.getValues(ctx, w.spreadsheet.ID(), w.qualify(area), dim, render)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range vr.Values {
		if len(row) > width {
			width = len(row)
		}
	}

	matrix := make([][]string, len(vr.Values))
	for i, row := range vr.Values {
		matrix[i] = make([]string, width)
		for j, v := range row {
			matrix[i][j] = valueString(v)
		}
	}

	return matrix, nil
}

// AllValues returns the formatted values of the whole worksheet.
func (w *Worksheet) AllValues(ctx context.Context) ([][]string, error) {
	return w.Values(ctx, w.rangeLabel(a1.Cell(1, 1), a1.Cell(w.Rows(), w.Cols())))
}

// Row returns the values of a single row.
func (w *Worksheet) Row(ctx context.Context, row int) ([]string, error) {
	values, err := w.Values(ctx, w.rangeLabel(a1.Cell(row, 1), a1.Cell(row, w.Cols())))
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return []string{}, nil
	}

	return values[0], nil
}

// EachRow invokes f for every row of the worksheet in order, with the
// 1-based row number and the row values. Iteration stops at the first error
// returned by f.
func (w *Worksheet) EachRow(ctx context.Context, f func(row int, values []string) error) error {
	values, err := w.AllValues(ctx)
	if err != nil {
		return err
	}

	for i, row := range values {
		if err := f(i+1, row); err != nil {
			return err
		}
	}

	return nil
}

// Col returns the values of a single column.
func (w *Worksheet) Col(ctx context.Context, col int) ([]string, error) {
	values, err := w.ValuesWith(ctx, w.rangeLabel(a1.Cell(1, col), a1.Cell(w.Rows(), col)), Columns, Formatted)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return []string{}, nil
	}

	return values[0], nil
}

// Records returns the worksheet contents as one map per row, keyed by the
// values of the head row. Values that read as integers or floats are
// converted.
func (w *Worksheet) Records(ctx context.Context, head int) ([]map[string]interface{}, error) {
	values, err := w.AllValues(ctx)
	if err != nil {
		return nil, err
	}

	if head < 1 || head > len(values) {
		return nil, fmt.Errorf("header row %d out of range", head)
	}

	keys := values[head-1]
	records := make([]map[string]interface{}, 0, len(values)-head)

	for _, row := range values[head:] {
		record := map[string]interface{}{}
		for i, key := range keys {
			if i < len(row) {
				record[key] = Numericise(row[i])
			} else {
				record[key] = ""
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// Cells returns the cells of the given range as a full rectangle, with
// values, formulas and notes populated from the grid data.
func (w *Worksheet) Cells(ctx context.Context, area string) ([][]*Cell, error) {
	r, err := a1.ParseRange(area)
	if err != nil {
		return nil, err
	}

	r = r.Bound(w.Rows(), w.Cols())

	resource, err := w.client.fetch(ctx, w.spreadsheet.ID(), "sheets(data(rowData(values(formattedValue,effectiveValue,userEnteredValue,note,userEnteredFormat))),properties(sheetId))",
		true, w.qualify(area))
	if err != nil {
		return nil, err
	}

	var rows []*sheets.RowData
	for _, sh := range resource.Sheets {
		if sh.Properties == nil || sh.Properties.SheetId == w.ID() {
			if len(sh.Data) > 0 {
				rows = sh.Data[0].RowData
			}
		}
	}

	matrix := make([][]*Cell, r.Height())
	for i := range matrix {
		matrix[i] = make([]*Cell, r.Width())
		for j := range matrix[i] {
			cell := newCell(w, a1.Cell(r.Start.Row+i, r.Start.Col+j))
			if i < len(rows) && j < len(rows[i].Values) {
				cell.setData(rows[i].Values[j])
			}

			matrix[i][j] = cell
		}
	}

	return matrix, nil
}

// Range returns the given range as a DataRange.
func (w *Worksheet) Range(ctx context.Context, area string) (*DataRange, error) {
	r, err := a1.ParseRange(area)
	if err != nil {
		return nil, err
	}

	r = r.Bound(w.Rows(), w.Cols())

	data, err := w.Cells(ctx, area)
	if err != nil {
		return nil, err
	}

	return newDataRange(w, r.Start, r.End, data), nil
}

// UpdateValue sets the value of a single cell.
func (w *Worksheet) UpdateValue(ctx context.Context, addr a1.Address, value interface{}) error {
	vr := sheets.ValueRange{
		Range:          w.rangeLabel(addr, addr),
		MajorDimension: string(Rows),
		Values:         [][]interface{}{{value}},
	}

	return w.client.updateValues(ctx, w.spreadsheet.ID(), &vr, w.spreadsheet.parse)
}

// UpdateValues writes a matrix of values starting at the top left of the
// given range. The extent is inferred from the values when the range is a
// single cell.
func (w *Worksheet) UpdateValues(ctx context.Context, area string, values [][]interface{}) error {
	return w.updateValues(ctx, area, values, Rows)
}

func (w *Worksheet) updateValues(ctx context.Context, area string, values [][]interface{}, dim Dimension) error {
	if len(values) == 0 {
		return nil
	}

	r, err := a1.ParseRange(area)
	if err != nil {
		return err
	}

	if r.Start == r.End {
		// extent inferred from the value matrix
		width := 0
		for _, row := range values {
			if len(row) > width {
				width = len(row)
			}
		}

		if dim == Rows {
			r.End, err = r.Start.Translate(len(values)-1, width-1)
		} else {
			r.End, err = r.Start.Translate(width-1, len(values)-1)
		}

		if err != nil {
			return err
		}
	}

	vr := sheets.ValueRange{
		Range:          w.rangeLabel(r.Start, r.End),
		MajorDimension: string(dim),
		Values:         values,
	}

	return w.client.updateValues(ctx, w.spreadsheet.ID(), &vr, w.spreadsheet.parse)
}

// UpdateRow writes values into a row, skipping colOffset columns.
func (w *Worksheet) UpdateRow(ctx context.Context, row int, values []interface{}, colOffset int) error {
	return w.updateValues(ctx, a1.Cell(row, colOffset+1).Label(), [][]interface{}{values}, Rows)
}

// UpdateCol writes values into a column, skipping rowOffset rows.
func (w *Worksheet) UpdateCol(ctx context.Context, col int, values []interface{}, rowOffset int) error {
	return w.updateValues(ctx, a1.Cell(rowOffset+1, col).Label(), [][]interface{}{values}, Columns)
}

// UpdateCells writes the values of a list of cells in a single update
// covering their bounding rectangle; cells not in the list are unchanged.
func (w *Worksheet) UpdateCells(ctx context.Context, cells []*Cell) error {
	if len(cells) == 0 {
		return nil
	}

	min := a1.Cell(cells[0].Row(), cells[0].Col())
	max := a1.Cell(cells[0].Row(), cells[0].Col())

	for _, cell := range cells {
		if cell.Row() < min.Row {
			min.Row = cell.Row()
		}
		if cell.Col() < min.Col {
			min.Col = cell.Col()
		}
		if cell.Row() > max.Row {
			max.Row = cell.Row()
		}
		if cell.Col() > max.Col {
			max.Col = cell.Col()
		}
	}

	values := make([][]interface{}, max.Row-min.Row+1)
	for i := range values {
		values[i] = make([]interface{}, max.Col-min.Col+1)
	}

	for _, cell := range cells {
		values[cell.Row()-min.Row][cell.Col()-min.Col] = cell.Value()
	}

	vr := sheets.ValueRange{
		Range:          w.rangeLabel(min, max),
		MajorDimension: string(Rows),
		Values:         values,
	}

	return w.client.updateValues(ctx, w.spreadsheet.ID(), &vr, w.spreadsheet.parse)
}

// Append searches for a table within the given range and appends the values
// after it, growing the worksheet if needed. With overwrite set the new
// data replaces whatever lies in the way.
func (w *Worksheet) Append(ctx context.Context, area string, values [][]interface{}, overwrite bool) error {
	if len(values) == 0 {
		return nil
	}

	vr := sheets.ValueRange{
		Values:         values,
		MajorDimension: string(Rows),
	}

	return w.client.appendValues(ctx, w.spreadsheet.ID(), w.qualify(area), &vr, overwrite)
}

// InsertRows inserts empty rows after the given row and optionally fills
// them with values.
func (w *Worksheet) InsertRows(ctx context.Context, row, number int, values [][]interface{}, inherit bool) error {
	return w.insertDimension(ctx, Rows, row, number, values, inherit)
}

// InsertCols inserts empty columns after the given column and optionally
// fills them with values (column-major).
func (w *Worksheet) InsertCols(ctx context.Context, col, number int, values [][]interface{}, inherit bool) error {
	return w.insertDimension(ctx, Columns, col, number, values, inherit)
}

func (w *Worksheet) insertDimension(ctx context.Context, dim Dimension, index, number int, values [][]interface{}, inherit bool) error {
	if number < 1 {
		return fmt.Errorf("invalid insert count %d", number)
	}

	if _, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		InsertDimension: &sheets.InsertDimensionRequest{
			InheritFromBefore: inherit,
			Range: &sheets.DimensionRange{
				SheetId:    w.ID(),
				Dimension:  string(dim),
				StartIndex: int64(index),
				EndIndex:   int64(index + number),
			},
		},
	}); err != nil {
		return err
	}

	if dim == Rows {
		w.resource.Properties.GridProperties.RowCount += int64(number)
	} else {
		w.resource.Properties.GridProperties.ColumnCount += int64(number)
	}

	if len(values) > 0 {
		if dim == Rows {
			return w.updateValues(ctx, a1.Cell(index+1, 1).Label(), values, Rows)
		}

		return w.updateValues(ctx, a1.Cell(1, index+1).Label(), values, Columns)
	}

	return nil
}

// DeleteRows deletes rows starting at the given (1-based) row.
func (w *Worksheet) DeleteRows(ctx context.Context, row, number int) error {
	return w.deleteDimension(ctx, Rows, row, number)
}

// DeleteCols deletes columns starting at the given (1-based) column.
func (w *Worksheet) DeleteCols(ctx context.Context, col, number int) error {
	return w.deleteDimension(ctx, Columns, col, number)
}

func (w *Worksheet) deleteDimension(ctx context.Context, dim Dimension, index, number int) error {
	if number < 1 {
		return fmt.Errorf("invalid delete count %d", number)
	}

	if _, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    w.ID(),
				Dimension:  string(dim),
				StartIndex: int64(index - 1),
				EndIndex:   int64(index - 1 + number),
			},
		},
	}); err != nil {
		return err
	}

	if dim == Rows {
		w.resource.Properties.GridProperties.RowCount -= int64(number)
	} else {
		w.resource.Properties.GridProperties.ColumnCount -= int64(number)
	}

	return nil
}

// Clear clears the given fields (by default the values) of a range; with no
// range given the whole worksheet is cleared.
func (w *Worksheet) Clear(ctx context.Context, area, fields string) error {
	if fields == "" {
		fields = "userEnteredValue"
	}

	if area == "" {
		area = w.rangeLabel(a1.Cell(1, 1), a1.Cell(w.Rows(), w.Cols()))
	}

	grange, err := w.gridRange(area)
	if err != nil {
		return err
	}

	_, err = w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		UpdateCells: &sheets.UpdateCellsRequest{
			Range:  grange,
			Fields: fields,
		},
	})

	return err
}

// AdjustColumnWidth sets the pixel width of the columns in [start, end].
func (w *Worksheet) AdjustColumnWidth(ctx context.Context, start, end, pixels int) error {
	return w.adjustDimension(ctx, Columns, start, end, pixels)
}

// AdjustRowHeight sets the pixel height of the rows in [start, end].
func (w *Worksheet) AdjustRowHeight(ctx context.Context, start, end, pixels int) error {
	return w.adjustDimension(ctx, Rows, start, end, pixels)
}

func (w *Worksheet) adjustDimension(ctx context.Context, dim Dimension, start, end, pixels int) error {
	if end < start {
		end = start
	}

	_, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
			Range: &sheets.DimensionRange{
				SheetId:    w.ID(),
				Dimension:  string(dim),
				StartIndex: int64(start - 1),
				EndIndex:   int64(end),
			},
			Properties: &sheets.DimensionProperties{
				PixelSize: int64(pixels),
			},
			Fields: "pixelSize",
		},
	})

	return err
}

// Sort sorts the given range on one of its columns (0 is the leftmost
// column of the range). Order is "ASCENDING" or "DESCENDING".
func (w *Worksheet) Sort(ctx context.Context, area string, column int, order string) error {
	grange, err := w.gridRange(area)
	if err != nil {
		return err
	}

	_, err = w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		SortRange: &sheets.SortRangeRequest{
			Range: grange,
			SortSpecs: []*sheets.SortSpec{
				{
					DimensionIndex: grange.StartColumnIndex + int64(column),
					SortOrder:      order,
				},
			},
		},
	})

	return err
}

// updateGrid refreshes the cached data grid used by Find. Without force the
// grid is only refetched when the spreadsheet has been modified since the
// last fetch.
func (w *Worksheet) updateGrid(ctx context.Context, force bool) error {
	if w.grid != nil && !force {
		modified, err := w.spreadsheet.Updated(ctx)
		if err == nil && !modified.After(w.gridFetched) {
			return nil
		}
	}

	grid, err := w.Cells(ctx, w.rangeLabel(a1.Cell(1, 1), a1.Cell(w.Rows(), w.Cols())))
	if err != nil {
		return err
	}

	w.grid = grid
	w.gridFetched = time.Now().UTC()

	return nil
}

// Find returns the cells whose value matches the query exactly. The search
// runs over the locally cached grid; refetch forces a refresh first.
func (w *Worksheet) Find(ctx context.Context, query string, refetch bool) ([]*Cell, error) {
	return w.findCells(ctx, func(c *Cell) bool { return c.Value() == query }, refetch)
}

// FindRegexp returns the cells whose value matches the regular expression.
func (w *Worksheet) FindRegexp(ctx context.Context, query *regexp.Regexp, refetch bool) ([]*Cell, error) {
	return w.findCells(ctx, func(c *Cell) bool { return query.MatchString(c.Value()) }, refetch)
}

func (w *Worksheet) findCells(ctx context.Context, match func(*Cell) bool, refetch bool) ([]*Cell, error) {
	if err := w.updateGrid(ctx, refetch); err != nil {
		return nil, err
	}

	found := []*Cell{}
	for _, row := range w.grid {
		for _, cell := range row {
			if match(cell) {
				found = append(found, cell)
			}
		}
	}

	return found, nil
}

// ReplaceAll finds cells matching the query and sets each to the
// replacement value.
func (w *Worksheet) ReplaceAll(ctx context.Context, query, replacement string) (int, error) {
	found, err := w.Find(ctx, query, true)
	if err != nil {
		return 0, err
	}

	for _, cell := range found {
		if err := cell.SetValue(ctx, replacement); err != nil {
			return 0, err
		}
	}

	return len(found), nil
}

// CreateNamedRange creates a named range covering [start, end].
func (w *Worksheet) CreateNamedRange(ctx context.Context, name string, start, end a1.Address) (*DataRange, error) {
	r, err := a1.NewRange(start, end)
	if err != nil {
		return nil, err
	}

	r.SheetID = w.ID()

	response, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		AddNamedRange: &sheets.AddNamedRangeRequest{
			NamedRange: &sheets.NamedRange{
				Name:  name,
				Range: r.GridRange(),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	drange := newDataRange(w, start, end, nil)
	drange.name = name

	if response != nil {
		nr := response.Replies[0].AddNamedRange.NamedRange
		drange.nameID = nr.NamedRangeId
		w.spreadsheet.resource.NamedRanges = append(w.spreadsheet.resource.NamedRanges, nr)
	}

	return drange, nil
}

// NamedRange returns the named range with the given name on this worksheet,
// refetching the spreadsheet properties once on a miss.
func (w *Worksheet) NamedRange(ctx context.Context, name string) (*DataRange, error) {
	for _, fetch := range []bool{false, true} {
		if fetch {
			if err := w.spreadsheet.Refresh(ctx); err != nil {
				return nil, err
			}
		}

		for _, nr := range w.spreadsheet.resource.NamedRanges {
			if nr.Name == name && nr.Range != nil && nr.Range.SheetId == w.ID() {
				return newNamedRange(w, nr), nil
			}
		}
	}

	return nil, fmt.Errorf("named range '%s': %w", name, ErrRangeNotFound)
}

// NamedRanges returns all named ranges on this worksheet.
func (w *Worksheet) NamedRanges() []*DataRange {
	ranges := []*DataRange{}
	for _, nr := range w.spreadsheet.resource.NamedRanges {
		if nr.Range != nil && nr.Range.SheetId == w.ID() {
			ranges = append(ranges, newNamedRange(w, nr))
		}
	}

	return ranges
}

// DeleteNamedRange deletes the named range with the given name.
func (w *Worksheet) DeleteNamedRange(ctx context.Context, name string) error {
	drange, err := w.NamedRange(ctx, name)
	if err != nil {
		return err
	}

	return drange.deleteNamedRange(ctx)
}

// CreateProtectedRange protects the cells in [start, end] against edits.
func (w *Worksheet) CreateProtectedRange(ctx context.Context, start, end a1.Address) (*DataRange, error) {
	drange := newDataRange(w, start, end, nil)
	if err := drange.Protect(ctx, true); err != nil {
		return nil, err
	}

	return drange, nil
}

// ProtectedRanges returns the protected ranges on this worksheet.
func (w *Worksheet) ProtectedRanges() []*DataRange {
	ranges := []*DataRange{}
	for _, pr := range w.resource.ProtectedRanges {
		if pr.Range != nil {
			ranges = append(ranges, newProtectedRange(w, pr))
		}
	}

	return ranges
}

// RemoveProtectedRange removes a protected range by id.
func (w *Worksheet) RemoveProtectedRange(ctx context.Context, id int64) error {
	_, err := w.client.batchUpdate(ctx, w.spreadsheet.ID(), &sheets.Request{
		DeleteProtectedRange: &sheets.DeleteProtectedRangeRequest{
			ProtectedRangeId: id,
		},
	})

	return err
}

// CopyTo copies this worksheet into another spreadsheet.
func (w *Worksheet) CopyTo(ctx context.Context, destination string) (*sheets.SheetProperties, error) {
	return w.client.copySheetTo(ctx, w.spreadsheet.ID(), w.ID(), destination)
}

// qualify prefixes an A1 range with the worksheet title when the label does
// not already carry one.
func (w *Worksheet) qualify(area string) string {
	if strings.Contains(area, "!") {
		return area
	}

	return "'" + w.Title() + "'!" + area
}

func (w *Worksheet) String() string {
	return fmt.Sprintf("<Worksheet %q index:%d>", w.Title(), w.Index())
}

// rangeTitle extracts the worksheet title from a range label.
func rangeTitle(area string) string {
	if ix := strings.LastIndex(area, "!"); ix != -1 {
		return strings.Trim(area[:ix], "'")
	}

	return ""
}

func valueString(v interface{}) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

// Numericise converts a string to an int64 or float64 when it reads as one,
// and returns it unchanged otherwise.
func Numericise(value string) interface{} {
	if value == "" {
		return ""
	}

	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return value
}
