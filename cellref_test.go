package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColToName(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"}
	for col, name := range tests {
		assert.Equal(t, name, ColToName(col))
		got, err := NameToCol(name)
		require.NoError(t, err)
		assert.Equal(t, col, got)
	}

	_, err := NameToCol("")
	assert.Error(t, err)
	_, err = NameToCol("A1")
	assert.Error(t, err)
}

func TestParseCellRef(t *testing.T) {
	ref, err := ParseCellRef("C4")
	require.NoError(t, err)
	assert.Equal(t, CellRef{Row: 3, Col: 2}, ref)
	assert.Equal(t, "C4", ref.String())

	ref, err = ParseCellRef(" $b$2 ")
	require.NoError(t, err)
	assert.Equal(t, CellRef{Row: 1, Col: 1}, ref)

	for _, bad := range []string{"", "A", "12", "A0", "A1x"} {
		_, err := ParseCellRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestSpanArea(t *testing.T) {
	single := SpanArea(CellDescriptor{Row: 2, Col: 1})
	assert.True(t, single.Single())
	assert.Equal(t, "B3:B3", single.String())

	wide := SpanArea(CellDescriptor{Row: 0, Col: 1, ColSpan: 2, RowSpan: 2})
	assert.False(t, wide.Single())
	assert.Equal(t, "B1:C2", wide.String())
	assert.True(t, wide.Contains(CellRef{Row: 1, Col: 2}))
	assert.False(t, wide.Contains(CellRef{Row: 0, Col: 3}))
}
