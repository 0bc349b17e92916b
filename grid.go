package cellgrid

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotEditable is returned for a change aimed at a header, a row number
// or a read-only data cell.
var ErrNotEditable = errors.New("cell is not editable")

// CellChange is a user edit reported by the renderer.
type CellChange struct {
	Row   int // grid row, 1 for the first data row
	Col   int // absolute grid column
	Value string
}

// Grid binds a RowStore and a header policy to a memoized projection and
// turns renderer edits into row-store updates.
type Grid struct {
	store  RowStore
	policy HeaderPolicy
	layout Layout
	memo   *Memo
	logger *slog.Logger
}

// New creates a Grid. Without WithRowStore the grid keeps its own
// MemoryStore seeded from rows; later changes to rows are not observed.
func New(rows []Record, opts ...Option) *Grid {
	o := buildOptions(opts)
	store := o.store
	if store == nil {
		store = NewMemoryStore(rows)
	}
	return &Grid{
		store:  store,
		policy: o.policy,
		layout: o.layout,
		memo:   &Memo{logger: o.logger},
		logger: o.logger,
	}
}

// Cells returns the current cell list.
func (g *Grid) Cells() []CellDescriptor {
	cells, _ := g.memo.Pass(g.store.Rows(), g.policy)
	return cells
}

// Plan returns the current column plan.
func (g *Grid) Plan() ColumnPlan {
	_, plan := g.memo.Pass(g.store.Rows(), g.policy)
	return plan
}

// Layout returns the layout options for the renderer.
func (g *Grid) Layout() Layout { return g.layout }

// Store returns the row store backing the grid.
func (g *Grid) Store() RowStore { return g.store }

// SetHeaderPolicy replaces the header policy.
func (g *Grid) SetHeaderPolicy(p HeaderPolicy) { g.policy = p }

// AppendRow adds a row at the end of the store.
func (g *Grid) AppendRow(r Record) error {
	if err := g.store.Append(r); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	g.memo.Invalidate()
	return nil
}

// RemoveRow removes the row at ordinal.
func (g *Grid) RemoveRow(ordinal int) error {
	if err := g.store.Remove(ordinal); err != nil {
		return fmt.Errorf("remove row %d: %w", ordinal, err)
	}
	g.memo.Invalidate()
	return nil
}

// CellAt returns the cell covering ref, following spans.
func (g *Grid) CellAt(ref CellRef) (CellDescriptor, bool) {
	for _, c := range g.Cells() {
		if SpanArea(c).Contains(ref) {
			return c, true
		}
	}
	return CellDescriptor{}, false
}

// Edit applies a change addressed by an A1-style name such as "B2".
func (g *Grid) Edit(name, value string) error {
	ref, err := ParseCellRef(name)
	if err != nil {
		return fmt.Errorf("edit %q: %w", name, err)
	}
	return g.ApplyChange(CellChange{Row: ref.Row, Col: ref.Col, Value: value})
}

// ApplyChanges applies renderer edits in order. Each data-cell change
// results in exactly one RowStore.Update with the full updated row.
// Processing stops at the first failing change.
func (g *Grid) ApplyChanges(changes []CellChange) error {
	for _, ch := range changes {
		if err := g.ApplyChange(ch); err != nil {
			return err
		}
	}
	return nil
}

// ApplyChange applies a single edit to the row shown at ch.Row. The grid
// shows rows in store order, so that row's ordinal is ch.Row-1.
func (g *Grid) ApplyChange(ch CellChange) error {
	ref := CellRef{Row: ch.Row, Col: ch.Col}
	target := CellDescriptor{Row: ch.Row, Col: ch.Col}
	if ch.Row < 0 || ch.Col < 0 || target.IsHeader() || target.IsRowNumber() {
		return fmt.Errorf("change at %s: %w", ref, ErrNotEditable)
	}

	rows := g.store.Rows()
	_, plan := g.memo.Pass(rows, g.policy)

	ordinal := ch.Row - 1
	if ordinal >= len(rows) {
		return fmt.Errorf("change at %s: ordinal %d of %d rows: %w", ref, ordinal, len(rows), ErrOrdinalOutOfRange)
	}
	col, ok := plan.Lookup(ch.Col)
	if !ok {
		return fmt.Errorf("change at %s: no column: %w", ref, ErrNotEditable)
	}
	row := rows[ordinal]
	if !dataCell(ch.Row, col, row).Props.Editable() {
		return fmt.Errorf("change at %s: field %q: %w", ref, col.Field, ErrNotEditable)
	}

	if err := g.store.Update(ordinal, row.With(col.Field, ch.Value)); err != nil {
		return fmt.Errorf("update row %d field %q: %w", ordinal, col.Field, err)
	}
	// stores may update in place, which the memo cannot see
	g.memo.Invalidate()
	g.logger.Debug("applied cell change", "cell", ref.String(), "field", col.Field, "ordinal", ordinal)
	return nil
}
