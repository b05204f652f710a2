package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"
)

func TestValueInput(t *testing.T) {
	assert.Equal(t, "USER_ENTERED", valueInput(true))
	assert.Equal(t, "RAW", valueInput(false))
}

func TestSplitValueRangeUnderLimit(t *testing.T) {
	vr := sheets.ValueRange{
		Range:          "'Summer'!A1:B3",
		MajorDimension: "ROWS",
		Values: [][]interface{}{
			{"a", "b"},
			{"c", "d"},
			{"e", "f"},
		},
	}

	chunks := splitValueRange(&vr, 50000)

	require.Len(t, chunks, 1)
	assert.Equal(t, &vr, chunks[0])
}

func TestSplitValueRangeRowMajor(t *testing.T) {
	vr := sheets.ValueRange{
		Range:          "'Summer'!A2:B7",
		MajorDimension: "ROWS",
		Values: [][]interface{}{
			{"a", "b"},
			{"c", "d"},
			{"e", "f"},
			{"g", "h"},
			{"i", "j"},
			{"k", "l"},
		},
	}

	chunks := splitValueRange(&vr, 4)

	require.Len(t, chunks, 3)

	assert.Equal(t, "'Summer'!A2:B3", chunks[0].Range)
	assert.Equal(t, "'Summer'!A4:B5", chunks[1].Range)
	assert.Equal(t, "'Summer'!A6:B7", chunks[2].Range)

	assert.Equal(t, [][]interface{}{{"a", "b"}, {"c", "d"}}, chunks[0].Values)
	assert.Equal(t, [][]interface{}{{"e", "f"}, {"g", "h"}}, chunks[1].Values)
	assert.Equal(t, [][]interface{}{{"i", "j"}, {"k", "l"}}, chunks[2].Values)
}

func TestSplitValueRangeColumnMajor(t *testing.T) {
	vr := sheets.ValueRange{
		Range:          "'Summer'!A1:B6",
		MajorDimension: "COLUMNS",
		Values: [][]interface{}{
			{"a", "c", "e", "g", "i", "k"},
			{"b", "d", "f", "h", "j", "l"},
		},
	}

	chunks := splitValueRange(&vr, 4)

	require.Len(t, chunks, 3)

	assert.Equal(t, "'Summer'!A1:B2", chunks[0].Range)
	assert.Equal(t, "'Summer'!A3:B4", chunks[1].Range)
	assert.Equal(t, "'Summer'!A5:B6", chunks[2].Range)

	assert.Equal(t, [][]interface{}{{"a", "c"}, {"b", "d"}}, chunks[0].Values)
	assert.Equal(t, [][]interface{}{{"e", "g"}, {"f", "h"}}, chunks[1].Values)
	assert.Equal(t, [][]interface{}{{"i", "k"}, {"j", "l"}}, chunks[2].Values)
}

func TestSplitValueRangeWithRaggedRows(t *testing.T) {
	vr := sheets.ValueRange{
		Range:          "'Summer'!A1:C4",
		MajorDimension: "ROWS",
		Values: [][]interface{}{
			{"a", "b", "c"},
			{"d"},
			{"e", "f"},
			{"g", "h", "i"},
		},
	}

	chunks := splitValueRange(&vr, 6)

	require.Len(t, chunks, 2)
	assert.Equal(t, "'Summer'!A1:C2", chunks[0].Range)
	assert.Equal(t, "'Summer'!A3:C4", chunks[1].Range)
}
