package cellgrid

import "fmt"

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // CompileRules will fail
	SeverityWarning                 // rules compile but likely do not do what was meant
)

// ValidationIssue is a single problem found in a rule set.
type ValidationIssue struct {
	Severity Severity
	Rule     int // index into Rules; -1 for the default expression
	Message  string
}

// String formats the issue as "[ERROR] rule 2: message" or "[WARN] default: ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	where := "default"
	if v.Rule >= 0 {
		where = fmt.Sprintf("rule %d", v.Rule)
	}
	return fmt.Sprintf("[%s] %s: %s", sev, where, v.Message)
}

// ValidateRules checks a rule set without evaluating it against any data.
func ValidateRules(rules HeaderRules) []ValidationIssue {
	var issues []ValidationIssue
	for i, r := range rules.Rules {
		if r.Field == "" && r.When == "" {
			issues = append(issues, ValidationIssue{SeverityWarning, i, "rule has neither field nor when and matches every column"})
		}
		if issue := compileCheck(i, "when", r.When, true); issue != nil {
			issues = append(issues, *issue)
		}
		if issue := compileCheck(i, "header", r.Header, false); issue != nil {
			issues = append(issues, *issue)
		}
		if r.ColSpan < 0 || r.RowSpan < 0 {
			issues = append(issues, ValidationIssue{SeverityError, i,
				fmt.Sprintf("spans must not be negative (colSpan %d, rowSpan %d)", r.ColSpan, r.RowSpan)})
		}
		if r.Hidden && (r.Title != "" || r.Header != "" || r.custom()) {
			issues = append(issues, ValidationIssue{SeverityWarning, i, "hidden rule ignores its title, header and cell settings"})
		}
		if r.Header != "" && (r.Title != "" || r.custom()) {
			issues = append(issues, ValidationIssue{SeverityWarning, i, "header expression overrides title and cell settings"})
		}
		for _, t := range []string{r.Template, r.CellTemplate} {
			if t != "" && !knownTemplate(Template(t)) {
				issues = append(issues, ValidationIssue{SeverityWarning, i, fmt.Sprintf("unknown template %q", t)})
			}
		}
	}
	if issue := compileCheck(-1, "default", rules.Default, false); issue != nil {
		issues = append(issues, *issue)
	}
	return issues
}

func knownTemplate(t Template) bool {
	switch t {
	case TemplateText, TemplateHeader, TemplateReadOnly:
		return true
	}
	return false
}

// compileCheck compiles an expression for syntax checking and returns an issue if it fails.
func compileCheck(rule int, attr, expression string, boolean bool) *ValidationIssue {
	if expression == "" {
		return nil
	}
	if _, err := compileExpr(expression, boolean); err != nil {
		return &ValidationIssue{
			Severity: SeverityError,
			Rule:     rule,
			Message:  fmt.Sprintf("invalid %s expression %q: %v", attr, expression, err),
		}
	}
	return nil
}
