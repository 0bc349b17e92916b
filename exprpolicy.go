package cellgrid

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprEnv is the variable set every header expression is compiled against.
func exprEnv(field string, row, col int) map[string]any {
	return map[string]any{"field": field, "row": row, "col": col}
}

func compileExpr(expression string, boolean bool) (*vm.Program, error) {
	opts := []expr.Option{expr.Env(exprEnv("", 0, 0))}
	if boolean {
		opts = append(opts, expr.AsBool())
	}
	return expr.Compile(expression, opts...)
}

// ExprPolicy is a HeaderPolicy compiled from HeaderRules.
type ExprPolicy struct {
	rules  []compiledRule
	def    *vm.Program
	logger *slog.Logger
}

type compiledRule struct {
	HeaderRule
	when   *vm.Program
	header *vm.Program
}

// CompileRules compiles every expression in rules. Issues of SeverityError
// from ValidateRules make it fail.
func CompileRules(rules HeaderRules, opts ...Option) (*ExprPolicy, error) {
	for _, issue := range ValidateRules(rules) {
		if issue.Severity == SeverityError {
			return nil, fmt.Errorf("compile header rules: %s", issue)
		}
	}

	o := buildOptions(opts)
	p := &ExprPolicy{logger: o.logger}
	for i, r := range rules.Rules {
		cr := compiledRule{HeaderRule: r}
		var err error
		if r.When != "" {
			if cr.when, err = compileExpr(r.When, true); err != nil {
				return nil, fmt.Errorf("compile rule %d when %q: %w", i, r.When, err)
			}
		}
		if r.Header != "" {
			if cr.header, err = compileExpr(r.Header, false); err != nil {
				return nil, fmt.Errorf("compile rule %d header %q: %w", i, r.Header, err)
			}
		}
		p.rules = append(p.rules, cr)
	}
	if rules.Default != "" {
		prog, err := compileExpr(rules.Default, false)
		if err != nil {
			return nil, fmt.Errorf("compile default %q: %w", rules.Default, err)
		}
		p.def = prog
	}
	return p, nil
}

// ResolveHeader implements HeaderPolicy. Expression failures fall back to
// the field name.
func (p *ExprPolicy) ResolveHeader(field string, row, col int) any {
	env := exprEnv(field, row, col)
	for i, r := range p.rules {
		if r.Field != "" && r.Field != field {
			continue
		}
		if r.when != nil {
			ok, err := expr.Run(r.when, env)
			if err != nil {
				p.logger.Warn("header rule condition failed", "rule", i, "field", field, "error", err)
				return field
			}
			if b, _ := ok.(bool); !b {
				continue
			}
		}
		return p.apply(i, r, field, env)
	}
	if p.def != nil {
		return p.run(-1, p.def, field, env)
	}
	return field
}

func (p *ExprPolicy) apply(i int, r compiledRule, field string, env map[string]any) any {
	switch {
	case r.Hidden:
		return nil
	case r.header != nil:
		return p.run(i, r.header, field, env)
	case r.custom():
		h := CustomHeader{
			Title:        r.Title,
			Template:     Template(r.Template),
			CellTemplate: Template(r.CellTemplate),
			ColSpan:      r.ColSpan,
			RowSpan:      r.RowSpan,
		}
		if r.Props != nil {
			h.Props = Props(r.Props).Merge(nil)
		}
		if r.CellProps != nil {
			h.CellProps = Props(r.CellProps).Merge(nil)
		}
		return h
	case r.Title != "":
		return r.Title
	default:
		return field
	}
}

func (p *ExprPolicy) run(i int, prog *vm.Program, field string, env map[string]any) any {
	out, err := expr.Run(prog, env)
	if err != nil {
		p.logger.Warn("header expression failed", "rule", i, "field", field, "error", err)
		return field
	}
	return out
}
