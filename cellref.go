package cellgrid

import (
	"fmt"
	"strings"
)

// CellRef is a zero-based grid coordinate.
type CellRef struct {
	Row int
	Col int
}

// ParseCellRef parses an A1-style name like "B3" or "$B$3".
func ParseCellRef(s string) (CellRef, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "$", "")
	if s == "" {
		return CellRef{}, fmt.Errorf("empty cell reference")
	}

	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return CellRef{}, fmt.Errorf("invalid cell reference: %q", s)
	}

	col, err := NameToCol(s[:i])
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}

	row := 0
	for _, ch := range s[i:] {
		if ch < '0' || ch > '9' {
			return CellRef{}, fmt.Errorf("invalid row in cell reference: %q", s)
		}
		row = row*10 + int(ch-'0')
	}
	if row < 1 {
		return CellRef{}, fmt.Errorf("invalid row number in cell reference: %q", s)
	}
	return CellRef{Row: row - 1, Col: col}, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// CellName formats the ref as "A1".
func (c CellRef) CellName() string {
	return fmt.Sprintf("%s%d", ColToName(c.Col), c.Row+1)
}

// String implements fmt.Stringer.
func (c CellRef) String() string { return c.CellName() }

// Offset returns the ref moved by rows and cols.
func (c CellRef) Offset(rows, cols int) CellRef {
	return CellRef{Row: c.Row + rows, Col: c.Col + cols}
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA"
func ColToName(col int) string {
	result := ""
	col++
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts a column name to a 0-based column index.
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col - 1, nil
}

// AreaRef is a rectangle spanned by two refs, both inclusive.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// SpanArea returns the area a descriptor covers once its spans are applied.
func SpanArea(c CellDescriptor) AreaRef {
	rows, cols := max(c.RowSpan, 1), max(c.ColSpan, 1)
	first := c.Ref()
	return AreaRef{First: first, Last: first.Offset(rows-1, cols-1)}
}

// String formats the area as "A1:C5".
func (a AreaRef) String() string {
	return a.First.CellName() + ":" + a.Last.CellName()
}

// Single reports whether the area is one cell.
func (a AreaRef) Single() bool { return a.First == a.Last }

// Contains reports whether ref falls inside the area.
func (a AreaRef) Contains(ref CellRef) bool {
	return ref.Row >= a.First.Row && ref.Row <= a.Last.Row &&
		ref.Col >= a.First.Col && ref.Col <= a.Last.Col
}
