package cellgrid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func spanPolicy() *HeaderFunc {
	p := HeaderFunc(func(field string, _, _ int) any {
		switch field {
		case "name":
			return "Name"
		case "city":
			return CustomHeader{Title: "City", ColSpan: 2}
		}
		return field
	})
	return &p
}

func TestWriteXLSX_ValuesSpansAndPanes(t *testing.T) {
	rows := []Record{
		RecordOf(F("name", "John"), F("city", "Oslo"), F("age", 28)),
		RecordOf(F("name", "Jane"), F("city", "Bergen"), F("age", 34)),
	}
	cells, _ := Project(rows, spanPolicy())

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, cells, DefaultLayout()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	expect := map[string]string{
		"A1": "#", "B1": "Name", "C1": "City", "E1": "age",
		"A2": "1", "B2": "John", "C2": "Oslo", "E2": "28",
		"A3": "2", "B3": "Jane", "C3": "Bergen", "E3": "34",
	}
	for cell, want := range expect {
		v, err := f.GetCellValue(DefaultSheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, v, cell)
	}

	merged, err := f.GetMergeCells(DefaultSheet)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "C1", merged[0].GetStartAxis())
	assert.Equal(t, "D1", merged[0].GetEndAxis())

	panes, err := f.GetPanes(DefaultSheet)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)
	assert.Equal(t, 0, panes.XSplit)
	assert.Equal(t, "A2", panes.TopLeftCell)
}

func TestXLSXRenderer_StylesDisabledCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	r, err := NewXLSXRenderer(f, "Grid")
	require.NoError(t, err)
	cells, _ := Project([]Record{RecordOf(F("name", "John"))}, nil)
	require.NoError(t, r.Render(cells, Layout{StickyTopRows: 1, StickyLeftColumns: 1}))

	corner, err := f.GetCellStyle("Grid", "A1")
	require.NoError(t, err)
	rowNum, err := f.GetCellStyle("Grid", "A2")
	require.NoError(t, err)
	data, err := f.GetCellStyle("Grid", "B2")
	require.NoError(t, err)

	assert.NotZero(t, corner)
	assert.NotZero(t, rowNum)
	assert.NotEqual(t, corner, rowNum, "header cells are bold")
	assert.Zero(t, data)

	assert.Len(t, r.styles, 2)
	assert.Contains(t, r.styles, DisabledStyle)

	panes, err := f.GetPanes("Grid")
	require.NoError(t, err)
	assert.Equal(t, "B2", panes.TopLeftCell)
	assert.Equal(t, "bottomRight", panes.ActivePane)
}

func TestXLSXRenderer_NoStickyNoPanes(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	r, err := NewXLSXRenderer(f, DefaultSheet)
	require.NoError(t, err)
	require.NoError(t, r.Render(nil, Layout{StickyBottomRows: 2}))

	panes, err := f.GetPanes(DefaultSheet)
	require.NoError(t, err)
	assert.False(t, panes.Freeze)
}

func TestReadRowsXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "name")
	f.SetCellValue(sheet, "B1", "age")
	f.SetCellValue(sheet, "C1", "city")
	f.SetCellValue(sheet, "A2", "John")
	f.SetCellValue(sheet, "B2", 28)
	f.SetCellValue(sheet, "C2", "Oslo")
	f.SetCellValue(sheet, "A3", "Jane")

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	rows, err := ReadRowsXLSX(&buf, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"name", "age", "city"}, rows[0].Keys())
	age, _ := rows[0].Get("age")
	assert.Equal(t, "28", age)
	city, ok := rows[1].Get("city")
	assert.True(t, ok)
	assert.Equal(t, "", city)

	cells, _ := Project(rows, nil)
	assert.Len(t, cells, 1+2+3+2*3)
}

func TestReadRowsXLSX_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	_, err := ReadRowsXLSX(&buf, "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sheet "Nope"`)
}
