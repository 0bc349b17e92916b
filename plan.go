package cellgrid

import "log/slog"

// FirstDataCol is the first column available to data; column 0 holds row numbers.
const FirstDataCol = 1

// Column is one resolved entry of a ColumnPlan.
type Column struct {
	Field    string
	Decision HeaderDecision
	Index    int // absolute grid column
	Span     int // slots reserved, at least 1
}

// ColumnPlan is the ordered, non-hidden column layout of one pass.
// Index strictly increases and each Index is the previous Index plus Span.
type ColumnPlan []Column

// PlanColumns resolves every key through policy and assigns absolute
// column indices. A nil policy titles each column with its field name.
// Hidden columns are dropped and consume no slot.
func PlanColumns(keys []string, policy HeaderPolicy, logger *slog.Logger) ColumnPlan {
	if logger == nil {
		logger = discardLogger
	}
	plan := make(ColumnPlan, 0, len(keys))
	next := FirstDataCol
	for _, field := range keys {
		d := resolveHeader(field, next, policy, logger)
		if d.Kind == DecisionHidden {
			continue
		}
		span := d.Span()
		plan = append(plan, Column{Field: field, Decision: d, Index: next, Span: span})
		next += span
	}
	return plan
}

func resolveHeader(field string, col int, policy HeaderPolicy, logger *slog.Logger) HeaderDecision {
	if policy == nil {
		return Default(field)
	}
	v := policy.ResolveHeader(field, 0, col)
	d, ok := Classify(field, v)
	if !ok {
		logger.Warn("header policy returned unsupported value, using default header",
			"field", field, "type", typeName(v))
	}
	return d
}

// Lookup returns the column starting at absolute index col.
func (p ColumnPlan) Lookup(col int) (Column, bool) {
	for _, c := range p {
		if c.Index == col {
			return c, true
		}
	}
	return Column{}, false
}

// Field returns the column holding field.
func (p ColumnPlan) Field(field string) (Column, bool) {
	for _, c := range p {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

// Width returns the number of grid columns the plan occupies, including
// the row-number column.
func (p ColumnPlan) Width() int {
	if len(p) == 0 {
		return FirstDataCol
	}
	last := p[len(p)-1]
	return last.Index + last.Span
}
