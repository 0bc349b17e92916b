package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Shapes(t *testing.T) {
	d, ok := Classify("age", nil)
	assert.True(t, ok)
	assert.Equal(t, DecisionHidden, d.Kind)
	assert.Equal(t, 0, d.Span())

	d, ok = Classify("age", "Age")
	assert.True(t, ok)
	assert.Equal(t, Default("Age"), d)
	assert.Equal(t, 1, d.Span())

	d, ok = Classify("age", Hidden())
	assert.True(t, ok)
	assert.Equal(t, DecisionHidden, d.Kind)

	var nilHeader *CustomHeader
	d, ok = Classify("age", nilHeader)
	assert.True(t, ok)
	assert.Equal(t, DecisionHidden, d.Kind)
}

func TestClassify_Misuse(t *testing.T) {
	for _, v := range []any{42, 3.5, []string{"a"}, struct{}{}, HeaderDecision{Kind: DecisionCustom}} {
		d, ok := Classify("age", v)
		assert.False(t, ok, "%T", v)
		assert.Equal(t, Default("age"), d, "%T", v)
	}
}

func TestClassify_CustomDefaults(t *testing.T) {
	d, ok := Classify("city", CustomHeader{Title: "City", ColSpan: 2})
	require.True(t, ok)
	require.Equal(t, DecisionCustom, d.Kind)
	assert.Equal(t, 2, d.Span())
	assert.Equal(t, TemplateReadOnly, d.Custom.Template)
	assert.Equal(t, Props{
		PropValue:    "City",
		PropEditable: false,
		PropStyle:    DisabledStyle,
	}, d.Custom.Props)

	d, ok = Classify("city", CustomHeader{})
	require.True(t, ok)
	assert.Equal(t, "city", d.Custom.Props.Value())
	assert.Equal(t, 1, d.Span())
}

func TestClassify_CustomKeepsExplicitValues(t *testing.T) {
	d, ok := Classify("city", &CustomHeader{
		Title:    "City",
		Template: TemplateHeader,
		Props:    Props{PropValue: "Where"},
	})
	require.True(t, ok)
	assert.Equal(t, TemplateHeader, d.Custom.Template)
	assert.Equal(t, Props{PropValue: "Where"}, d.Custom.Props)
}

func TestClassify_Map(t *testing.T) {
	d, ok := Classify("city", map[string]any{
		"title":        "City",
		"colSpan":      2,
		"rowSpan":      float64(1),
		"focusable":    false,
		"cellTemplate": "nonEditable",
		"cellProps":    map[string]any{"editable": false},
	})
	require.True(t, ok)
	require.Equal(t, DecisionCustom, d.Kind)
	assert.Equal(t, "City", d.Custom.Title)
	assert.Equal(t, 2, d.Custom.ColSpan)
	assert.Equal(t, 1, d.Custom.RowSpan)
	require.NotNil(t, d.Custom.Focusable)
	assert.False(t, *d.Custom.Focusable)
	assert.Equal(t, TemplateReadOnly, d.Custom.CellTemplate)
	assert.Equal(t, Props{"editable": false}, d.Custom.CellProps)

	d, ok = Classify("city", map[string]any{"hidden": true})
	assert.True(t, ok)
	assert.Equal(t, DecisionHidden, d.Kind)

	d, ok = Classify("city", map[string]any{"colour": "red"})
	assert.False(t, ok)
	assert.Equal(t, Default("city"), d)

	d, ok = Classify("city", map[string]any{"colSpan": "wide"})
	assert.False(t, ok)
	assert.Equal(t, Default("city"), d)
}

func TestPlanColumns_NilPolicy(t *testing.T) {
	plan := PlanColumns([]string{"a", "b"}, nil, nil)
	require.Len(t, plan, 2)
	assert.Equal(t, Column{Field: "a", Decision: Default("a"), Index: 1, Span: 1}, plan[0])
	assert.Equal(t, Column{Field: "b", Decision: Default("b"), Index: 2, Span: 1}, plan[1])
	assert.Equal(t, 3, plan.Width())

	_, ok := plan.Lookup(0)
	assert.False(t, ok)
	c, ok := plan.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "b", c.Field)
}

func TestPlanColumns_IndicesStrictlyIncrease(t *testing.T) {
	spans := map[string]int{"a": 3, "c": 2}
	policy := HeaderFunc(func(field string, _, _ int) any {
		if field == "b" {
			return nil
		}
		return CustomHeader{ColSpan: spans[field]}
	})

	plan := PlanColumns([]string{"a", "b", "c", "d"}, policy, nil)
	require.Len(t, plan, 3)
	next := FirstDataCol
	for _, c := range plan {
		assert.Equal(t, next, c.Index, c.Field)
		next = c.Index + c.Span
	}
	assert.Equal(t, []int{1, 4, 6}, []int{plan[0].Index, plan[1].Index, plan[2].Index})
	assert.Equal(t, 7, plan.Width())
	assert.Equal(t, FirstDataCol, PlanColumns(nil, policy, nil).Width())
}
