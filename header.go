package cellgrid

import (
	"fmt"
	"strconv"
)

// HeaderPolicy decides how each column's header is rendered.
//
// ResolveHeader is called once per field with row 0 and the column index the
// field would occupy. It returns one of:
//   - nil: hide the column
//   - string: default header with that text
//   - CustomHeader, *CustomHeader or map[string]any: custom header
//   - HeaderDecision: used as is
//
// Any other value falls back to a default header titled with the field name.
type HeaderPolicy interface {
	ResolveHeader(field string, row, col int) any
}

// HeaderFunc adapts a function to HeaderPolicy. Pass a *HeaderFunc to make
// the policy comparable, which lets Memo and Grid reuse cached passes.
type HeaderFunc func(field string, row, col int) any

// ResolveHeader calls f.
func (f HeaderFunc) ResolveHeader(field string, row, col int) any {
	return f(field, row, col)
}

// DecisionKind tags a HeaderDecision.
type DecisionKind int

const (
	DecisionDefault DecisionKind = iota
	DecisionHidden
	DecisionCustom
)

// String returns the kind name.
func (k DecisionKind) String() string {
	switch k {
	case DecisionDefault:
		return "Default"
	case DecisionHidden:
		return "Hidden"
	case DecisionCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// HeaderDecision is the resolved header of one field.
type HeaderDecision struct {
	Kind   DecisionKind
	Text   string        // Default header text
	Custom *CustomHeader // set for DecisionCustom
}

// Hidden returns a decision excluding the column.
func Hidden() HeaderDecision { return HeaderDecision{Kind: DecisionHidden} }

// Default returns a decision rendering an auto-generated header with text.
func Default(text string) HeaderDecision {
	return HeaderDecision{Kind: DecisionDefault, Text: text}
}

// Custom returns a decision rendering h.
func Custom(h CustomHeader) HeaderDecision {
	return HeaderDecision{Kind: DecisionCustom, Custom: &h}
}

// Span returns the number of column slots the decision reserves.
func (d HeaderDecision) Span() int {
	switch d.Kind {
	case DecisionHidden:
		return 0
	case DecisionCustom:
		if d.Custom != nil && d.Custom.ColSpan > 1 {
			return d.Custom.ColSpan
		}
	}
	return 1
}

// CustomHeader describes a caller-designed header and, optionally, how the
// column's data cells render.
type CustomHeader struct {
	Title    string
	Template Template // header template; TemplateReadOnly when empty
	Props    Props    // header props; synthesized when nil

	RowSpan int
	ColSpan int

	Focusable  *bool
	Selectable *bool

	// CellTemplate and CellProps override the column's data cells.
	// CellProps merge over the computed defaults key by key.
	CellTemplate Template
	CellProps    Props
}

// Classify turns a policy result into a HeaderDecision. ok is false when v
// has a shape the policy contract does not allow; the decision then falls
// back to Default(field).
func Classify(field string, v any) (HeaderDecision, bool) {
	switch h := v.(type) {
	case nil:
		return Hidden(), true
	case string:
		return Default(h), true
	case HeaderDecision:
		if h.Kind == DecisionCustom {
			if h.Custom == nil {
				return Default(field), false
			}
			return Custom(h.Custom.withDefaults(field)), true
		}
		return h, true
	case CustomHeader:
		return Custom(h.withDefaults(field)), true
	case *CustomHeader:
		if h == nil {
			return Hidden(), true
		}
		return Custom(h.withDefaults(field)), true
	case map[string]any:
		return classifyMap(field, h)
	default:
		return Default(field), false
	}
}

// withDefaults fills the template and props a custom header left empty.
func (h CustomHeader) withDefaults(field string) CustomHeader {
	if h.Template == "" {
		h.Template = TemplateReadOnly
	}
	if h.Props == nil {
		title := h.Title
		if title == "" {
			title = field
		}
		h.Props = Props{
			PropValue:    title,
			PropEditable: false,
			PropStyle:    DisabledStyle,
		}
	}
	return h
}

// classifyMap decodes a loosely typed custom header, as produced by
// expressions and rule files.
func classifyMap(field string, m map[string]any) (HeaderDecision, bool) {
	if hidden, _ := m["hidden"].(bool); hidden {
		return Hidden(), true
	}
	var h CustomHeader
	for k, v := range m {
		switch k {
		case "hidden":
		case "title":
			h.Title = fmt.Sprint(v)
		case "template":
			h.Template = Template(fmt.Sprint(v))
		case "cellTemplate":
			h.CellTemplate = Template(fmt.Sprint(v))
		case "props":
			p, ok := toProps(v)
			if !ok {
				return Default(field), false
			}
			h.Props = p
		case "cellProps":
			p, ok := toProps(v)
			if !ok {
				return Default(field), false
			}
			h.CellProps = p
		case "rowSpan":
			n, ok := toInt(v)
			if !ok {
				return Default(field), false
			}
			h.RowSpan = n
		case "colSpan":
			n, ok := toInt(v)
			if !ok {
				return Default(field), false
			}
			h.ColSpan = n
		case "focusable":
			b, ok := v.(bool)
			if !ok {
				return Default(field), false
			}
			h.Focusable = &b
		case "selectable":
			b, ok := v.(bool)
			if !ok {
				return Default(field), false
			}
			h.Selectable = &b
		default:
			return Default(field), false
		}
	}
	return Custom(h.withDefaults(field)), true
}

func toProps(v any) (Props, bool) {
	switch p := v.(type) {
	case Props:
		return p, true
	case map[string]any:
		return Props(p), true
	case nil:
		return nil, true
	}
	return nil, false
}

// toInt converts a numeric value to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}
	return 0, false
}
