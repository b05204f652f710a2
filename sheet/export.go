package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportCSV writes the worksheet values to w as CSV.
func (w *Worksheet) ExportCSV(ctx context.Context, out io.Writer) error {
	return w.exportSeparated(ctx, out, ',')
}

// ExportTSV writes the worksheet values to w as tab-separated values.
func (w *Worksheet) ExportTSV(ctx context.Context, out io.Writer) error {
	return w.exportSeparated(ctx, out, '\t')
}

func (w *Worksheet) exportSeparated(ctx context.Context, out io.Writer, comma rune) error {
	values, err := w.AllValues(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(out)
	writer.Comma = comma

	if err := writer.WriteAll(values); err != nil {
		return fmt.Errorf("error exporting worksheet '%s' (%v)", w.Title(), err)
	}

	writer.Flush()

	return writer.Error()
}

// ExportXLSX writes the worksheet values to w as a single-sheet XLSX
// workbook.
func (w *Worksheet) ExportXLSX(ctx context.Context, out io.Writer) error {
	values, err := w.AllValues(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, w.Title()); err != nil {
		return fmt.Errorf("error exporting worksheet '%s' (%v)", w.Title(), err)
	}

	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("error exporting worksheet '%s' (%v)", w.Title(), err)
		}

		line := make([]interface{}, len(row))
		for j, v := range row {
			line[j] = Numericise(v)
		}

		if err := f.SetSheetRow(w.Title(), cell, &line); err != nil {
			return fmt.Errorf("error exporting worksheet '%s' (%v)", w.Title(), err)
		}
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("error exporting worksheet '%s' (%v)", w.Title(), err)
	}

	return nil
}
