package mapper

import "json-mapper/rules"

// Mapper holds a default ruleset and forwards conversions to a Dispatcher.
type Mapper struct {
	dispatcher *Dispatcher
}

// New creates a Mapper with a default ruleset.
func New(defaultRules rules.Ruleset, opts ...Option) *Mapper {
	return &Mapper{dispatcher: NewDispatcher(defaultRules, opts...)}
}

// Conversion builds a target from source with rs, or with the default ruleset
// when rs is empty.
func (m *Mapper) Conversion(source any, extAttrs map[string]any, rs rules.Ruleset) map[string]any {
	return m.dispatcher.Evaluate(source, extAttrs, rs)
}

// Bind returns a conversion function bound to rs.
func (m *Mapper) Bind(rs rules.Ruleset) func(source any, extAttrs map[string]any) map[string]any {
	return func(source any, extAttrs map[string]any) map[string]any {
		return m.dispatcher.Evaluate(source, extAttrs, rs)
	}
}

// Dispatcher returns the underlying dispatcher.
func (m *Mapper) Dispatcher() *Dispatcher {
	return m.dispatcher
}
