package a1

import (
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestParseRange(t *testing.T) {
	cases := map[string]Range{
		"A1:D4": {Start: Address{1, 1}, End: Address{4, 4}, SheetID: -1},
		"A1":    {Start: Address{1, 1}, End: Address{1, 1}, SheetID: -1},
		"A:D":   {Start: Address{0, 1}, End: Address{0, 4}, SheetID: -1},
		"2:4":   {Start: Address{2, 0}, End: Address{4, 0}, SheetID: -1},
		"Sheet1!A1:D4":  {Start: Address{1, 1}, End: Address{4, 4}, SheetTitle: "Sheet1", SheetID: -1},
		"'My Sheet'!B2": {Start: Address{2, 2}, End: Address{2, 2}, SheetTitle: "My Sheet", SheetID: -1},
		"Stations!A2:E": {Start: Address{0, 1}, End: Address{0, 5}, SheetTitle: "Stations", SheetID: -1},
	}

	for label, expected := range cases {
		r, err := ParseRange(label)
		if err != nil {
			t.Fatalf("Unexpected error parsing '%s' (%v)", label, err)
		}

		if !reflect.DeepEqual(r, expected) {
			t.Errorf("Incorrect range for '%s'\n   expected: %+v\n   got:      %+v", label, expected, r)
		}
	}
}

func TestParseRangeNormalisesPartiallyUnboundedAxes(t *testing.T) {
	// 'A1:C' is unbounded in rows at one end only - the whole row axis
	// becomes unbounded
	r, err := ParseRange("A1:C")
	if err != nil {
		t.Fatalf("Unexpected error parsing 'A1:C' (%v)", err)
	}

	if r.Label() != "A:C" {
		t.Errorf("Incorrect normalised label - expected 'A:C', got '%s'", r.Label())
	}
}

func TestParseRangeWithInvalidLabel(t *testing.T) {
	for _, label := range []string{"", "Sheet1!", "D4:A1", "C:A", "A:1", "2:D"} {
		if _, err := ParseRange(label); err == nil {
			t.Errorf("Expected error parsing '%s', got %v", label, err)
		}
	}
}

func TestRangeLabel(t *testing.T) {
	r, err := NewRange(Cell(1, 1), Cell(4, 4))
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if r.Label() != "A1:D4" {
		t.Errorf("Incorrect label - expected 'A1:D4', got '%s'", r.Label())
	}

	r.SheetTitle = "Sheet1"
	if r.Label() != "'Sheet1'!A1:D4" {
		t.Errorf("Incorrect label - expected ''Sheet1'!A1:D4', got '%s'", r.Label())
	}
}

func TestRangeBound(t *testing.T) {
	r := MustRange("A:C").Bound(100, 26)

	if !reflect.DeepEqual(r.Start, Address{1, 1}) || !reflect.DeepEqual(r.End, Address{100, 3}) {
		t.Errorf("Incorrect bounded range - got %+v", r)
	}

	if r.Height() != 100 || r.Width() != 3 {
		t.Errorf("Incorrect extents - expected 100x3, got %dx%d", r.Height(), r.Width())
	}
}

func TestRangeContains(t *testing.T) {
	r := MustRange("B2:D4")

	if !r.Contains(Cell(3, 3)) {
		t.Errorf("Expected B2:D4 to contain C3")
	}

	if r.Contains(Cell(5, 3)) {
		t.Errorf("Expected B2:D4 to not contain C5")
	}

	if !MustRange("B:D").Contains(Cell(500, 3)) {
		t.Errorf("Expected B:D to contain C500")
	}
}

func TestRangeToGridRange(t *testing.T) {
	r := MustRange("B2:D4")
	r.SheetID = 12345

	expected := &sheets.GridRange{
		SheetId:          12345,
		StartRowIndex:    1,
		EndRowIndex:      4,
		StartColumnIndex: 1,
		EndColumnIndex:   4,
		ForceSendFields:  []string{"StartRowIndex", "StartColumnIndex"},
	}

	if gr := r.GridRange(); !reflect.DeepEqual(gr, expected) {
		t.Errorf("Incorrect GridRange\n   expected: %+v\n   got:      %+v", expected, gr)
	}
}

func TestRangeToGridRangeWithUnboundedRows(t *testing.T) {
	r := MustRange("A:C")
	r.SheetID = 1

	gr := r.GridRange()
	if gr.EndRowIndex != 0 || gr.StartColumnIndex != 0 || gr.EndColumnIndex != 3 {
		t.Errorf("Incorrect GridRange for unbounded rows - got %+v", gr)
	}
}

func TestRangeFromGridRange(t *testing.T) {
	gr := &sheets.GridRange{
		SheetId:          7,
		StartRowIndex:    1,
		EndRowIndex:      4,
		StartColumnIndex: 1,
		EndColumnIndex:   4,
	}

	r := FromGridRange(gr)
	if r.Label() != "B2:D4" || r.SheetID != 7 {
		t.Errorf("Incorrect range from GridRange - got %+v ('%s')", r, r.Label())
	}
}

func TestGridRangeRoundTrip(t *testing.T) {
	for _, label := range []string{"A1:D4", "B2:B2", "A:C", "2:4"} {
		r := MustRange(label)
		r.SheetID = 3

		if rt := FromGridRange(r.GridRange()); rt.Label() != label {
			t.Errorf("Round trip failed for '%s' - got '%s'", label, rt.Label())
		}
	}
}
