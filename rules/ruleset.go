package rules

import (
	"sort"
)

// Field pairs a target field name with the rule that produces it.
// A nil Rule is skipped during evaluation.
type Field struct {
	Target string
	Rule   Rule
}

// Ruleset is an ordered set of target fields with unique names.
type Ruleset struct {
	Fields []Field
}

// New builds a ruleset from fields. Later duplicates replace earlier ones in
// place.
func New(fields ...Field) Ruleset {
	var rs Ruleset
	for _, f := range fields {
		rs.Set(f.Target, f.Rule)
	}

	return rs
}

// FromMap builds a ruleset from decoded rule values, ordered by field name.
func FromMap(m map[string]any) Ruleset {
	targets := make([]string, 0, len(m))
	for target := range m {
		targets = append(targets, target)
	}

	sort.Strings(targets)

	rs := Ruleset{Fields: make([]Field, 0, len(targets))}
	for _, target := range targets {
		rs.Fields = append(rs.Fields, Field{Target: target, Rule: FromValue(m[target])})
	}

	return rs
}

// Len returns the number of fields.
func (rs Ruleset) Len() int {
	return len(rs.Fields)
}

// IsEmpty returns true if the ruleset has no fields.
func (rs Ruleset) IsEmpty() bool {
	return len(rs.Fields) == 0
}

// Get returns the rule for target.
func (rs Ruleset) Get(target string) (Rule, bool) {
	for _, f := range rs.Fields {
		if f.Target == target {
			return f.Rule, true
		}
	}

	return nil, false
}

// Set replaces the rule for target, or appends it.
func (rs *Ruleset) Set(target string, rule Rule) {
	for i := range rs.Fields {
		if rs.Fields[i].Target == target {
			rs.Fields[i].Rule = rule
			return
		}
	}

	rs.Fields = append(rs.Fields, Field{Target: target, Rule: rule})
}

// Targets returns the target field names in order.
func (rs Ruleset) Targets() []string {
	targets := make([]string, len(rs.Fields))
	for i, f := range rs.Fields {
		targets[i] = f.Target
	}

	return targets
}

// ToMap converts the ruleset back into plain rule values.
func (rs Ruleset) ToMap() map[string]any {
	m := make(map[string]any, len(rs.Fields))
	for _, f := range rs.Fields {
		m[f.Target] = ToValue(f.Rule)
	}

	return m
}
