package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// sheetToTSV writes a matrix of worksheet values to f as tab-separated
// values, collapsing runs of whitespace within each value.
func sheetToTSV(f io.Writer, values [][]string) error {
	if len(values) == 0 {
		return fmt.Errorf("empty sheet")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = clean(v)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// tsvToSheet reads a TSV file into a value matrix suitable for a worksheet
// update.
func tsvToSheet(f io.Reader) ([][]any, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, v := range record {
			row[j] = v
		}

		rows[i] = row
	}

	return rows, nil
}

var whitespace = regexp.MustCompile(`\s{2,}`)

func clean(v string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(v, " "))
}
