package cellgrid

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// HeaderRules is a declarative header policy, usually loaded from YAML:
//
//	rules:
//	  - field: age
//	    hidden: true
//	  - when: 'field startsWith "addr"'
//	    title: Address
//	    colSpan: 2
//	default: 'upper(field)'
//
// Expressions (when, header, default) see the variables field, row and col.
type HeaderRules struct {
	Rules   []HeaderRule `yaml:"rules"`
	Default string       `yaml:"default"`
}

// HeaderRule matches fields by exact name, by expression, or both.
// The first matching rule decides the header.
type HeaderRule struct {
	Field string `yaml:"field"`
	When  string `yaml:"when"`

	Hidden bool   `yaml:"hidden"`
	Title  string `yaml:"title"`
	Header string `yaml:"header"` // expression; its result is classified like any policy result

	Template     string         `yaml:"template"`
	CellTemplate string         `yaml:"cellTemplate"`
	ColSpan      int            `yaml:"colSpan"`
	RowSpan      int            `yaml:"rowSpan"`
	Props        map[string]any `yaml:"props"`
	CellProps    map[string]any `yaml:"cellProps"`
}

// custom reports whether the rule needs a CustomHeader rather than plain text.
func (r HeaderRule) custom() bool {
	return r.Template != "" || r.CellTemplate != "" || r.ColSpan != 0 || r.RowSpan != 0 ||
		r.Props != nil || r.CellProps != nil
}

// LoadHeaderRules decodes rules from YAML. Unknown keys are rejected.
// An empty document yields no rules.
func LoadHeaderRules(r io.Reader) (HeaderRules, error) {
	var rules HeaderRules
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		if errors.Is(err, io.EOF) {
			return HeaderRules{}, nil
		}
		return HeaderRules{}, fmt.Errorf("decode header rules: %w", err)
	}
	return rules, nil
}
