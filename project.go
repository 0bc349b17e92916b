package cellgrid

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strconv"
)

// CornerText is the text of the row-number header at (0,0).
const CornerText = "#"

// Project converts rows into the flat cell list for a grid renderer, along
// with the column plan used to build it. Output is deterministic: corner,
// header cells, then for each row its number followed by its data cells.
// Empty input yields no cells and an empty plan.
func Project(rows []Record, policy HeaderPolicy, opts ...Option) ([]CellDescriptor, ColumnPlan) {
	o := buildOptions(opts)
	return project(rows, policy, o.logger)
}

func project(rows []Record, policy HeaderPolicy, logger *slog.Logger) ([]CellDescriptor, ColumnPlan) {
	if len(rows) == 0 {
		return []CellDescriptor{}, ColumnPlan{}
	}

	plan := PlanColumns(DiscoverKeys(rows), policy, logger)

	cells := make([]CellDescriptor, 0, 1+len(plan)+len(rows)*(1+len(plan)))
	cells = append(cells, CellDescriptor{
		Row:      0,
		Col:      0,
		Template: TemplateHeader,
		Props:    readOnlyProps(CornerText),
	})
	for _, c := range plan {
		cells = append(cells, headerCell(c))
	}

	for i, row := range rows {
		r := i + 1
		cells = append(cells, CellDescriptor{
			Row:      r,
			Col:      0,
			Template: TemplateReadOnly,
			Props:    readOnlyProps(strconv.Itoa(r)),
		})
		for _, c := range plan {
			cells = append(cells, dataCell(r, c, row))
		}
	}
	return cells, plan
}

func readOnlyProps(value string) Props {
	return Props{
		PropValue:    value,
		PropEditable: false,
		PropStyle:    DisabledStyle,
	}
}

func headerCell(c Column) CellDescriptor {
	if c.Decision.Kind != DecisionCustom || c.Decision.Custom == nil {
		return CellDescriptor{
			Row:      0,
			Col:      c.Index,
			Template: TemplateHeader,
			Props:    readOnlyProps(c.Decision.Text),
		}
	}
	h := c.Decision.Custom
	cell := CellDescriptor{
		Row:        0,
		Col:        c.Index,
		Template:   h.Template,
		Props:      h.Props.Merge(nil),
		Focusable:  h.Focusable,
		Selectable: h.Selectable,
	}
	if h.RowSpan > 1 {
		cell.RowSpan = h.RowSpan
	}
	if c.Span > 1 {
		cell.ColSpan = c.Span
	}
	return cell
}

func dataCell(r int, c Column, row Record) CellDescriptor {
	v, _ := row.Get(c.Field)
	cell := CellDescriptor{
		Row:      r,
		Col:      c.Index,
		Template: TemplateText,
		Props: Props{
			PropValue:    Stringify(v),
			PropEditable: true,
		},
	}
	if h := c.Decision.Custom; c.Decision.Kind == DecisionCustom && h != nil {
		if h.CellTemplate != "" {
			cell.Template = h.CellTemplate
		}
		if cell.Template == TemplateReadOnly {
			cell.Props[PropEditable] = false
		}
		if h.CellProps != nil {
			cell.Props = cell.Props.Merge(h.CellProps)
		}
	}
	return cell
}

// Stringify renders a field value as cell text. Absent and falsy values
// (nil, false, zero numbers, NaN, "") render as "".
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if !x {
			return ""
		}
		return "true"
	case float64:
		if x == 0 || math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		if x == 0 || math.IsNaN(float64(x)) {
			return ""
		}
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() == 0 {
			return ""
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() == 0 {
			return ""
		}
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(v)
}

// Memo caches the last projection pass. A pass is reused while both the
// row slice and the policy are the same references as last time: rows are
// compared by backing array and length, policies by ==. Policies whose
// dynamic type is not comparable (a bare HeaderFunc) always recompute.
//
// Cached slices are shared between calls and must not be modified.
type Memo struct {
	logger *slog.Logger

	valid  bool
	rows   rowsIdentity
	policy HeaderPolicy
	cells  []CellDescriptor
	plan   ColumnPlan

	hits   int
	misses int
}

type rowsIdentity struct {
	first *Record
	n     int
}

func identityOf(rows []Record) rowsIdentity {
	if len(rows) == 0 {
		return rowsIdentity{}
	}
	return rowsIdentity{first: &rows[0], n: len(rows)}
}

// NewMemo creates an empty Memo.
func NewMemo(opts ...Option) *Memo {
	o := buildOptions(opts)
	return &Memo{logger: o.logger}
}

// Cells returns the cell list for rows and policy, recomputing only when
// either changed since the previous call.
func (m *Memo) Cells(rows []Record, policy HeaderPolicy) []CellDescriptor {
	cells, _ := m.Pass(rows, policy)
	return cells
}

// Pass is like Cells but also returns the column plan.
func (m *Memo) Pass(rows []Record, policy HeaderPolicy) ([]CellDescriptor, ColumnPlan) {
	id := identityOf(rows)
	if m.valid && m.rows == id && samePolicy(m.policy, policy) {
		m.hits++
		return m.cells, m.plan
	}
	if m.logger == nil {
		m.logger = discardLogger
	}
	m.misses++
	m.cells, m.plan = project(rows, policy, m.logger)
	m.rows, m.policy, m.valid = id, policy, true
	m.logger.Debug("projected grid", "rows", len(rows), "columns", len(m.plan), "cells", len(m.cells))
	return m.cells, m.plan
}

// Invalidate drops the cached pass.
func (m *Memo) Invalidate() {
	m.valid = false
	m.cells, m.plan, m.policy = nil, nil, nil
}

// Stats returns how many calls were served from cache and how many recomputed.
func (m *Memo) Stats() (hits, misses int) {
	return m.hits, m.misses
}

func samePolicy(a, b HeaderPolicy) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
