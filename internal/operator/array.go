package operator

import (
	"strings"

	"json-mapper/internal/value"
	"json-mapper/rules"
)

// templateMarker opens every placeholder token; elements still containing it
// after rendering are dropped.
const templateMarker = "<!-"

// injectArr returns the selected array followed by data. When the selection
// is not an array only data is returned.
func injectArr(p Params, source any) []any {
	out := []any{}

	if items, ok := value.ToList(lookup(source, p.Path("select"))); ok {
		out = append(out, items...)
	}

	data, _ := p.List("data")

	return append(out, data...)
}

func injectArrOp(_ *Library, p Params, source any) any {
	return injectArr(p, source)
}

// injectArrAndTemplateRender renders "<!-name->" placeholders in the
// inject-arr result. Each name in template.sourcePath selects its replacement;
// names that resolve falsy are left unrendered. Elements with an unrendered
// placeholder are dropped and duplicates removed.
func injectArrAndTemplateRender(_ *Library, p Params, source any) any {
	items := injectArr(p, source)
	if copied, ok := value.DeepCopy(items).([]any); ok {
		items = copied
	}

	template, _ := p.Map("template")
	sourcePath, _ := template.Map("sourcePath")

	for _, name := range sourcePath.Keys() {
		replacement := lookup(source, sourcePath.Path(name))
		if !value.Truthy(replacement) {
			continue
		}

		token := templateMarker + name + "->"
		text := value.ToString(replacement)

		for i, item := range items {
			if s, ok := item.(string); ok {
				items[i] = replaceFirst(s, token, text)
			}
		}
	}

	rendered := make([]any, 0, len(items))

	for _, item := range items {
		if strings.Contains(value.ToString(item), templateMarker) {
			continue
		}

		if containsSame(rendered, item) {
			continue
		}

		rendered = append(rendered, item)
	}

	return rendered
}

func containsSame(items []any, v any) bool {
	for _, item := range items {
		if value.SameValueZero(item, v) {
			return true
		}
	}

	return false
}

// arrayStrMapper maps every selected element through the mapper table and
// drops falsy results. A falsy selection yields a deep copy of the default.
func arrayStrMapper(_ *Library, p Params, source any) any {
	selected := lookup(source, p.Path("select"))
	if !value.Truthy(selected) {
		return value.DeepCopy(p.Value("default"))
	}

	mapper, _ := p.Map("mapper")
	out := []any{}

	for _, key := range elements(selected) {
		if mapped := mapper.Value(value.ToString(key)); value.Truthy(mapped) {
			out = append(out, mapped)
		}
	}

	return out
}

// elements iterates slices element-wise, strings per character and objects
// per value in key order. Other values have no elements.
func elements(v any) []any {
	if items, ok := value.ToList(v); ok {
		return items
	}

	if s, ok := asString(v); ok {
		chars := strings.Split(s, "")

		out := make([]any, len(chars))
		for i, c := range chars {
			out[i] = c
		}

		return out
	}

	if m, ok := rules.Normalize(v).(map[string]any); ok {
		keys := Params(m).Keys()

		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = m[k]
		}

		return out
	}

	return nil
}

// arraySelect starts from a copy of the default (when it is an array) and
// appends every selected value that is not nil, flattening array values one
// level.
func arraySelect(_ *Library, p Params, source any) any {
	out := []any{}

	if seed, ok := value.ToList(value.DeepCopy(p.Value("default"))); ok {
		out = append(out, seed...)
	}

	for _, path := range p.Paths("selects") {
		v := lookup(source, path)
		if value.IsNil(v) {
			continue
		}

		if items, ok := value.ToList(v); ok {
			out = append(out, items...)
		} else {
			out = append(out, v)
		}
	}

	return out
}
