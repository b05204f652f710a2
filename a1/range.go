package a1

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Range is a rectangular, possibly unbounded, range of cells on a sheet.
// Both indexes are 1-based and inclusive. An axis left unbounded on one end
// is unbounded on both ends - 'A1:C' normalises to 'A:C'.
type Range struct {
	Start Address
	End   Address

	// SheetTitle and SheetID identify the worksheet the range belongs to,
	// when known. SheetID is -1 when unset.
	SheetTitle string
	SheetID    int64
}

// NewRange builds a bounded range from start and end addresses.
func NewRange(start, end Address) (Range, error) {
	r := Range{Start: start, End: end, SheetID: -1}
	if err := r.normalise(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// ParseRange parses a range label, with or without a worksheet title prefix:
// 'Sheet1!A1:D4', 'A1:D4', 'A:D', '2:4' and 'A1' are all valid.
func ParseRange(label string) (Range, error) {
	r := Range{SheetID: -1}
	rem := label

	if ix := strings.LastIndex(label, "!"); ix != -1 {
		r.SheetTitle = strings.Trim(label[:ix], "'")
		rem = label[ix+1:]
	}

	if rem == "" {
		return Range{}, &ErrInvalidRange{Range: label}
	}

	start, end, _ := strings.Cut(rem, ":")

	addr, err := ParseAddress(start)
	if err != nil {
		return Range{}, &ErrInvalidRange{Range: label}
	}

	r.Start = addr
	r.End = addr

	if end != "" {
		if addr, err = ParseAddress(end); err != nil {
			return Range{}, &ErrInvalidRange{Range: label}
		}

		r.End = addr
	}

	if err := r.normalise(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// normalise applies the index constraints: an axis unbounded at either end
// is made unbounded at both, the ends may not be unbounded on different
// axes, and start may not exceed end on a bounded axis.
func (r *Range) normalise() error {
	if (r.Start.Row > 0 && r.Start.Col == 0 && r.End.Row == 0 && r.End.Col > 0) ||
		(r.Start.Row == 0 && r.Start.Col > 0 && r.End.Row > 0 && r.End.Col == 0) {
		return &ErrInvalidRange{Range: r.label(false), Reason: "ends unbounded on different axes"}
	}

	if r.Start.Row == 0 || r.End.Row == 0 {
		r.Start.Row, r.End.Row = 0, 0
	}

	if r.Start.Col == 0 || r.End.Col == 0 {
		r.Start.Col, r.End.Col = 0, 0
	}

	if r.Start.Row > 0 && r.Start.Row > r.End.Row {
		return &ErrInvalidRange{Range: r.label(false), Reason: "start row after end row"}
	}

	if r.Start.Col > 0 && r.Start.Col > r.End.Col {
		return &ErrInvalidRange{Range: r.label(false), Reason: "start column after end column"}
	}

	return nil
}

// Label returns the range in A1 notation, prefixed with the worksheet title
// when one is set.
func (r Range) Label() string {
	return r.label(true)
}

func (r Range) label(withTitle bool) string {
	label := ""
	if withTitle && r.SheetTitle != "" {
		label = "'" + r.SheetTitle + "'!"
	}

	if r.Start.Zero() && r.End.Zero() {
		return strings.TrimSuffix(label, "!")
	}

	return label + r.Start.Label() + ":" + r.End.Label()
}

func (r Range) String() string {
	return r.Label()
}

// Bounded returns true if the range is bounded on both axes.
func (r Range) Bounded() bool {
	return r.Start.Bounded() && r.End.Bounded()
}

// Bound fills the unbounded axes of the range from the worksheet extents,
// returning a fully bounded copy.
func (r Range) Bound(rows, cols int) Range {
	bounded := r
	if bounded.Start.Row == 0 {
		bounded.Start.Row, bounded.End.Row = 1, rows
	}

	if bounded.Start.Col == 0 {
		bounded.Start.Col, bounded.End.Col = 1, cols
	}

	return bounded
}

// Height is the number of rows a bounded range covers.
func (r Range) Height() int {
	return r.End.Row - r.Start.Row + 1
}

// Width is the number of columns a bounded range covers.
func (r Range) Width() int {
	return r.End.Col - r.Start.Col + 1
}

// Contains returns true if the (bounded) address lies within the range.
func (r Range) Contains(addr Address) bool {
	if r.Start.Row > 0 && (addr.Row < r.Start.Row || addr.Row > r.End.Row) {
		return false
	}

	if r.Start.Col > 0 && (addr.Col < r.Start.Col || addr.Col > r.End.Col) {
		return false
	}

	return true
}

// GridRange translates the range into the API GridRange shape - zero-based,
// with exclusive end indexes and unbounded sides omitted.
func (r Range) GridRange() *sheets.GridRange {
	gr := sheets.GridRange{
		SheetId: r.SheetID,
	}

	if r.Start.Row > 0 {
		gr.StartRowIndex = int64(r.Start.Row - 1)
		gr.EndRowIndex = int64(r.End.Row)
		gr.ForceSendFields = append(gr.ForceSendFields, "StartRowIndex")
	}

	if r.Start.Col > 0 {
		gr.StartColumnIndex = int64(r.Start.Col - 1)
		gr.EndColumnIndex = int64(r.End.Col)
		gr.ForceSendFields = append(gr.ForceSendFields, "StartColumnIndex")
	}

	return &gr
}

// FromGridRange translates the API GridRange shape back into a Range. The
// worksheet title is not part of the wire shape and is left unset.
func FromGridRange(gr *sheets.GridRange) Range {
	r := Range{SheetID: gr.SheetId}

	if gr.EndRowIndex > 0 {
		r.Start.Row = int(gr.StartRowIndex) + 1
		r.End.Row = int(gr.EndRowIndex)
	}

	if gr.EndColumnIndex > 0 {
		r.Start.Col = int(gr.StartColumnIndex) + 1
		r.End.Col = int(gr.EndColumnIndex)
	}

	return r
}

// MustRange is a ParseRange that panics on a malformed label. Intended for
// literals in tests and examples.
func MustRange(label string) Range {
	r, err := ParseRange(label)
	if err != nil {
		panic(fmt.Sprintf("a1: %v", err))
	}

	return r
}
