package cellgrid

import (
	"fmt"
	"sort"
	"strings"
)

// Describe returns a human-readable dump of a cell list, one line per cell
// in row-major order. Useful for debugging header policies.
//
//	Grid: 2x3 (6 cells)
//	  A1 header "#" ro
//	  B1 nonEditable "City" span 1x2 ro
func Describe(cells []CellDescriptor) string {
	sorted := make([]CellDescriptor, len(cells))
	copy(sorted, cells)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	height, width := 0, 0
	for _, c := range sorted {
		last := SpanArea(c).Last
		height = max(height, last.Row+1)
		width = max(width, last.Col+1)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Grid: %dx%d (%d cells)\n", height, width, len(sorted))
	for _, c := range sorted {
		fmt.Fprintf(&b, "  %s %s %q", c.Ref().CellName(), c.Template, c.Value())
		if c.RowSpan > 1 || c.ColSpan > 1 {
			fmt.Fprintf(&b, " span %dx%d", max(c.RowSpan, 1), max(c.ColSpan, 1))
		}
		if !c.Props.Editable() {
			b.WriteString(" ro")
		}
		if c.Focusable != nil && !*c.Focusable {
			b.WriteString(" nofocus")
		}
		if c.Selectable != nil && !*c.Selectable {
			b.WriteString(" noselect")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DescribePlan returns one line per planned column: its letter, field,
// decision and span.
func DescribePlan(plan ColumnPlan) string {
	var b strings.Builder
	for _, c := range plan {
		fmt.Fprintf(&b, "%s %s %s", ColToName(c.Index), c.Field, c.Decision.Kind)
		switch c.Decision.Kind {
		case DecisionDefault:
			fmt.Fprintf(&b, " %q", c.Decision.Text)
		case DecisionCustom:
			fmt.Fprintf(&b, " %q", c.Decision.Custom.Props.Value())
		}
		if c.Span > 1 {
			fmt.Fprintf(&b, " span=%d", c.Span)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
