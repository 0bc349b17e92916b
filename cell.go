package cellgrid

// Template names the renderer's cell template for a descriptor.
type Template string

const (
	TemplateText     Template = "text"        // editable plain text
	TemplateHeader   Template = "header"      // auto-generated header
	TemplateReadOnly Template = "nonEditable" // read-only text
)

// Well-known Props keys.
const (
	PropValue    = "value"
	PropEditable = "editable"
	PropStyle    = "style"
)

// Style is the visual styling handed to the renderer.
type Style struct {
	Background string
	Color      string
	Bold       bool
}

// DisabledStyle marks cells the user cannot edit.
var DisabledStyle = Style{Background: "#F5F5F5", Color: "#666666"}

// Props holds render-time properties of a cell.
type Props map[string]any

// Merge returns a copy of p with every key of over replacing p's value.
func (p Props) Merge(over Props) Props {
	out := make(Props, len(p)+len(over))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Value returns the "value" property as a string.
func (p Props) Value() string {
	s, _ := p[PropValue].(string)
	return s
}

// Editable reports the "editable" property.
func (p Props) Editable() bool {
	b, _ := p[PropEditable].(bool)
	return b
}

// Style returns the "style" property, if set.
func (p Props) Style() (Style, bool) {
	switch s := p[PropStyle].(type) {
	case Style:
		return s, true
	case *Style:
		if s != nil {
			return *s, true
		}
	case map[string]any:
		// rule files and expressions carry styles as plain maps
		var st Style
		st.Background, _ = s["background"].(string)
		st.Color, _ = s["color"].(string)
		st.Bold, _ = s["bold"].(bool)
		return st, true
	}
	return Style{}, false
}

// CellDescriptor is a single positioned, renderable cell.
// Row 0 holds headers and column 0 holds row numbers.
type CellDescriptor struct {
	Row      int
	Col      int
	Template Template
	Props    Props

	// Zero spans mean "unset"; the renderer uses 1.
	RowSpan int
	ColSpan int

	Focusable  *bool
	Selectable *bool
}

// Ref returns the cell's coordinate.
func (c CellDescriptor) Ref() CellRef {
	return CellRef{Row: c.Row, Col: c.Col}
}

// Value is shorthand for c.Props.Value().
func (c CellDescriptor) Value() string {
	return c.Props.Value()
}

// IsHeader reports whether the cell sits in the header row.
func (c CellDescriptor) IsHeader() bool { return c.Row == 0 }

// IsRowNumber reports whether the cell sits in the row-number column.
func (c CellDescriptor) IsRowNumber() bool { return c.Col == 0 && c.Row > 0 }
