// Package selector resolves select paths against arbitrary source values.
//
// A path addresses nested data with dots and brackets:
//
//	user.name
//	images.length
//	items[0].title
//	labels["content-type"]
//
// Each step looks the segment up as a map key, a struct field (by json tag,
// exact name, then loosely normalized name), a method, a slice index, or the
// "length" of a slice or string. Zero-argument functions and methods met along
// the way are invoked and their first result is used.
//
// A path that names an existing top-level key verbatim is looked up as that
// key, so a source {"a.b": 1} resolves "a.b" to 1.
package selector
