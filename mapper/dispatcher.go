package mapper

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"json-mapper/diagnostic"
	"json-mapper/internal/match"
	"json-mapper/internal/operator"
	"json-mapper/internal/selector"
	"json-mapper/internal/value"
	"json-mapper/rules"
)

// ExtendsExportsKey names the source entry whose fields are merged into the
// target after every evaluated field.
const ExtendsExportsKey = "extendsExports"

// suggestThreshold is the minimum similarity for "did you mean" suggestions.
const suggestThreshold = 0.6

// Dispatcher evaluates rulesets. It holds no per-call state and is safe for
// concurrent use.
type Dispatcher struct {
	defaults  rules.Ruleset
	operators *operator.Library
	logger    zerolog.Logger
}

// NewDispatcher creates a Dispatcher that falls back to defaults when asked to
// evaluate an empty ruleset. The defaults are stored as given.
func NewDispatcher(defaults rules.Ruleset, opts ...Option) *Dispatcher {
	o := newOptions(opts)

	return &Dispatcher{
		defaults:  defaults,
		operators: operator.New(o.operators...),
		logger:    o.logger,
	}
}

// Defaults returns the default ruleset.
func (d *Dispatcher) Defaults() rules.Ruleset {
	return d.defaults
}

// Operators returns the tags of every operator the dispatcher knows.
func (d *Dispatcher) Operators() []string {
	return d.operators.Tags()
}

// Evaluate builds a target from source. An empty ruleset selects the
// defaults. extAttrs are merged last and override every derived field.
func (d *Dispatcher) Evaluate(source any, extAttrs map[string]any, rs rules.Ruleset) map[string]any {
	return d.evaluate(source, extAttrs, rs, recorder{})
}

// Explain evaluates like Evaluate and also returns what happened to every
// field.
func (d *Dispatcher) Explain(source any, extAttrs map[string]any, rs rules.Ruleset) (map[string]any, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	target := d.evaluate(source, extAttrs, rs, recorder{diags: &diags})

	return target, diags
}

func (d *Dispatcher) evaluate(source any, extAttrs map[string]any, rs rules.Ruleset, rec recorder) map[string]any {
	if rs.IsEmpty() {
		rs = d.defaults
		rec.info(diagnostic.CodeDefaultRules, "empty ruleset, using the default ruleset", "")
	}

	if source == nil {
		source = map[string]any{}
	}

	target := make(map[string]any, rs.Len())

	for _, field := range rs.Fields {
		if field.Rule == nil {
			rec.info(diagnostic.CodeSkipped, "falsy rule skipped", field.Target)
			continue
		}

		v := d.resolve(field, source, rec)

		if isPruned(v) {
			delete(target, field.Target)
			rec.info(diagnostic.CodePruned, "no value, field omitted", field.Target)
		} else {
			target[field.Target] = v
		}

		d.logger.Trace().
			Str("field", field.Target).
			Stringer("rule", field.Rule.Kind()).
			Interface("value", v).
			Msg("Resolved field")

		mergeExtendsExports(target, source, field.Target, rec)
	}

	for k, v := range extAttrs {
		if _, ok := target[k]; ok {
			rec.info(diagnostic.CodeExtAttr, "overridden by extra attribute", k)
		}

		target[k] = v
	}

	return target
}

func (d *Dispatcher) resolve(field rules.Field, source any, rec recorder) any {
	switch rule := field.Rule.(type) {
	case rules.Direct:
		v, ok := selector.Resolve(source, rule.Path)
		if !ok {
			rec.info(diagnostic.CodeUnresolvedPath, fmt.Sprintf("path %q did not resolve", rule.Path), field.Target)
		}

		return v

	case rules.List:
		out := []any{}

		for _, key := range rule.Keys {
			if v, _ := selector.Key(source, key); value.Truthy(v) {
				out = append(out, v)
			}
		}

		return out

	case rules.Operator:
		if forced, ok := rule.ForceValue(); ok {
			rec.info(diagnostic.CodeForcedValue, "forceValue overrides the operator", field.Target)
			return forced
		}

		if !d.operators.Has(rule.Tag) {
			d.logger.Debug().Str("field", field.Target).Str("type", rule.Tag).Msg("Unknown operator type")
			rec.warning(diagnostic.CodeUnknownTag, fmt.Sprintf("unknown operator type %q", rule.Tag), field.Target,
				match.Suggest(rule.Tag, d.operators.Tags(), suggestThreshold, 3)...)

			return nil
		}

		return d.operators.Apply(rule, source)

	default:
		d.logger.Debug().Str("field", field.Target).Msg("Rule of unknown shape")
		rec.warning(diagnostic.CodeUnknownRule, fmt.Sprintf("rule of unknown shape %T", rules.ToValue(field.Rule)), field.Target)

		return nil
	}
}

// isPruned reports whether v stands for "no value": nil, undefined, or "".
func isPruned(v any) bool {
	if value.IsNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.String && rv.Len() == 0
}

func mergeExtendsExports(target map[string]any, source any, field string, rec recorder) {
	raw, ok := selector.Key(source, ExtendsExportsKey)
	if !ok {
		return
	}

	entries, ok := selector.Entries(raw)
	if !ok || len(entries) == 0 {
		return
	}

	for k, v := range entries {
		target[k] = v
	}

	rec.info(diagnostic.CodeExtendsExports, fmt.Sprintf("merged %d extendsExports entries", len(entries)), field)
}

// recorder forwards to Diagnostics when one is attached.
type recorder struct {
	diags *diagnostic.Diagnostics
}

func (r recorder) info(code, message, field string) {
	if r.diags != nil {
		r.diags.AddInfo(code, message, field)
	}
}

func (r recorder) warning(code, message, field string, suggestions ...string) {
	if r.diags != nil {
		r.diags.AddWarning(code, message, field, suggestions...)
	}
}
