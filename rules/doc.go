// Package rules defines mapping rulesets: how each field of a target object is
// derived from a source object.
//
// A ruleset maps target field names to rules. A rule takes one of three
// shapes:
//
//	title: article.title                 # Direct: a select path into the source
//	tags: [primaryTag, secondaryTag]     # List: literal top-level source keys
//	kind:                                # Operator: a tagged transformation
//	  type: switch
//	  default: 1
//	  options:
//	    - leftSelect: images.length
//	      operation: gt
//	      rightValue: 2
//	      result: 2
//
// Falsy rule values (null, false, 0, "") are kept in the ruleset as nil rules
// and skipped during evaluation. Any other shape becomes an Unknown rule,
// which evaluates to no value.
//
// # Formats
//
// Rulesets are authored as JSON, YAML or TOML. JSON and YAML keep the
// authored field order; TOML and Go maps are ordered by field name. Field
// order never changes evaluation output.
package rules
