// Package mapper evaluates mapping rulesets against source objects.
//
// A Dispatcher walks the fields of a ruleset, resolves each field from the
// source by the shape of its rule, and assembles a fresh target object:
//
//	rs, err := rules.LoadFile("article.yaml")
//	if err != nil {
//		return err
//	}
//
//	m := mapper.New(rs)
//	target := m.Conversion(source, map[string]any{"channel": "web"}, rules.Ruleset{})
//
// Evaluation never fails. Unresolved paths, unknown operator tags and rules
// of unknown shape produce no value, and fields whose value is nil or ""
// are left out of the target rather than set. Caller-supplied extra
// attributes are merged last and always win.
//
// # extendsExports
//
// When the source carries an "extendsExports" object, its entries are merged
// into the target after every evaluated field. This lets a source inject
// fields regardless of the ruleset. It is kept for existing rulesets; new
// rulesets should express fields as rules instead.
//
// # Randomness and time
//
// The random-proportion, random-num and moment-random-unique-id operators use
// the random source and clock given with WithRand and WithClock. Both default
// to goroutine-safe system sources, so a Dispatcher may be shared.
package mapper
