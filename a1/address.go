// Package a1 implements the spreadsheet address notation used by the Google
// Sheets API - labels like 'A1' or 'C3:D5' combining a letter-encoded column
// with a 1-based row number.
//
// An Address or Range may be unbounded on an axis ('A:C' spans whole columns,
// '2:4' whole rows). Unbounded axes are represented by a zero index.
package a1

import (
	"regexp"
	"strconv"
	"strings"
)

// Address is a single cell position. Row and Col are 1-based; a zero value
// on either axis marks that axis as unbounded.
type Address struct {
	Row int
	Col int
}

var labelRegex = regexp.MustCompile(`^([A-Za-z]*)([0-9]*)$`)

// ParseAddress converts a label in A1 notation into an Address. Labels with
// a missing row or column ('A', '12') parse as addresses unbounded on that
// axis.
func ParseAddress(label string) (Address, error) {
	match := labelRegex.FindStringSubmatch(strings.TrimSpace(label))
	if match == nil || (match[1] == "" && match[2] == "") {
		return Address{}, &ErrInvalidLabel{label}
	}

	addr := Address{}
	if match[1] != "" {
		addr.Col = lettersToCol(match[1])
	}

	if match[2] != "" {
		row, err := strconv.Atoi(match[2])
		if err != nil || row < 1 {
			return Address{}, &ErrInvalidLabel{label}
		}

		addr.Row = row
	}

	return addr, nil
}

// Cell builds a bounded address from 1-based row and column indexes.
func Cell(row, col int) Address {
	return Address{Row: row, Col: col}
}

// Label returns the address in A1 notation. Unbounded axes are omitted.
func (a Address) Label() string {
	label := ""
	if a.Col > 0 {
		label = colToLetters(a.Col)
	}

	if a.Row > 0 {
		label += strconv.Itoa(a.Row)
	}

	return label
}

// Bounded returns true if both axes of the address are set.
func (a Address) Bounded() bool {
	return a.Row > 0 && a.Col > 0
}

// Zero returns true if neither axis of the address is set.
func (a Address) Zero() bool {
	return a.Row == 0 && a.Col == 0
}

// Translate returns the address offset by the given number of rows and
// columns. Translating an address out of the grid is an error.
func (a Address) Translate(rows, cols int) (Address, error) {
	addr := Address{Row: a.Row + rows, Col: a.Col + cols}
	if addr.Row < 1 || addr.Col < 1 {
		return Address{}, &ErrInvalidLabel{addr.Label()}
	}

	return addr, nil
}

func (a Address) String() string {
	return a.Label()
}

// colToLetters encodes a 1-based column index as column letters i.e. 1 to
// 'A', 26 to 'Z', 27 to 'AA' and 703 to 'AAA'.
func colToLetters(col int) string {
	letters := ""
	for div := col; div > 0; {
		mod := div % 26
		div = div / 26
		if mod == 0 {
			mod = 26
			div -= 1
		}

		letters = string(rune('A'+mod-1)) + letters
	}

	return letters
}

// lettersToCol decodes column letters to a 1-based column index.
func lettersToCol(letters string) int {
	col := 0
	for _, c := range strings.ToUpper(letters) {
		col = col*26 + int(c-'A'+1)
	}

	return col
}
