package a1

import (
	"reflect"
	"testing"
)

func TestParseAddress(t *testing.T) {
	cases := map[string]Address{
		"A1":    {Row: 1, Col: 1},
		"a1":    {Row: 1, Col: 1},
		"D2":    {Row: 2, Col: 4},
		"Z10":   {Row: 10, Col: 26},
		"AA1":   {Row: 1, Col: 27},
		"AZ3":   {Row: 3, Col: 52},
		"AAA1":  {Row: 1, Col: 703},
		"ZZ500": {Row: 500, Col: 702},
	}

	for label, expected := range cases {
		addr, err := ParseAddress(label)
		if err != nil {
			t.Fatalf("Unexpected error parsing '%s' (%v)", label, err)
		}

		if !reflect.DeepEqual(addr, expected) {
			t.Errorf("Incorrect address for '%s'\n   expected: %+v\n   got:      %+v", label, expected, addr)
		}
	}
}

func TestParseAddressWithUnboundedAxes(t *testing.T) {
	addr, err := ParseAddress("C")
	if err != nil {
		t.Fatalf("Unexpected error parsing 'C' (%v)", err)
	}

	if !reflect.DeepEqual(addr, Address{Row: 0, Col: 3}) {
		t.Errorf("Incorrect address for 'C' - expected %+v, got %+v", Address{Col: 3}, addr)
	}

	addr, err = ParseAddress("12")
	if err != nil {
		t.Fatalf("Unexpected error parsing '12' (%v)", err)
	}

	if !reflect.DeepEqual(addr, Address{Row: 12, Col: 0}) {
		t.Errorf("Incorrect address for '12' - expected %+v, got %+v", Address{Row: 12}, addr)
	}
}

func TestParseAddressWithInvalidLabel(t *testing.T) {
	for _, label := range []string{"", "A0", "0", "1A", "A-1", "A1B", "🚀"} {
		if _, err := ParseAddress(label); err == nil {
			t.Errorf("Expected error parsing '%s', got %v", label, err)
		}
	}
}

func TestAddressLabel(t *testing.T) {
	cases := map[string]Address{
		"A1":    {Row: 1, Col: 1},
		"D2":    {Row: 2, Col: 4},
		"Z10":   {Row: 10, Col: 26},
		"AA1":   {Row: 1, Col: 27},
		"AZ3":   {Row: 3, Col: 52},
		"BA1":   {Row: 1, Col: 53},
		"AAA1":  {Row: 1, Col: 703},
		"C":     {Row: 0, Col: 3},
		"7":     {Row: 7, Col: 0},
		"XFD99": {Row: 99, Col: 16384},
	}

	for expected, addr := range cases {
		if label := addr.Label(); label != expected {
			t.Errorf("Incorrect label for %+v - expected '%s', got '%s'", addr, expected, label)
		}
	}
}

func TestAddressLabelRoundTrip(t *testing.T) {
	for col := 1; col <= 2000; col++ {
		addr := Address{Row: col, Col: col}

		parsed, err := ParseAddress(addr.Label())
		if err != nil {
			t.Fatalf("Unexpected error round-tripping %+v (%v)", addr, err)
		}

		if parsed != addr {
			t.Fatalf("Round trip failed for %+v - got %+v (label '%s')", addr, parsed, addr.Label())
		}
	}
}

func TestAddressTranslate(t *testing.T) {
	addr, err := Cell(2, 1).Translate(3, 0)
	if err != nil {
		t.Fatalf("Unexpected error translating A2 (%v)", err)
	}

	if addr.Label() != "A5" {
		t.Errorf("Incorrect translation - expected 'A5', got '%s'", addr.Label())
	}

	if _, err := Cell(1, 1).Translate(-1, 0); err == nil {
		t.Errorf("Expected error translating A1 off the grid, got %v", err)
	}
}
