package selector

import "strings"

// isDeepPath reports whether path needs to be split into segments.
func isDeepPath(path string) bool {
	return strings.ContainsAny(path, ".[")
}

// ParsePath splits a path into its segments.
// Supports: "a", "a.b", "a[0]", "a[0].b", `a["b.c"]`, "a..b" (empty segment).
func ParsePath(path string) []string {
	var segments []string

	if strings.HasPrefix(path, ".") {
		segments = append(segments, "")
	}

	for i := 0; i < len(path); {
		switch path[i] {
		case '[':
			segment, next := parseBracket(path, i)
			segments = append(segments, segment)
			i = next

		case '.':
			i++
			if i == len(path) || path[i] == '.' {
				segments = append(segments, "")
			}

		case ']':
			i++

		default:
			j := i
			for j < len(path) && !strings.ContainsRune(".[]", rune(path[j])) {
				j++
			}

			segments = append(segments, path[i:j])
			i = j
		}
	}

	return segments
}

// parseBracket reads the bracket segment starting at path[start] == '['.
// It returns the segment and the index just past the closing bracket.
func parseBracket(path string, start int) (string, int) {
	i := start + 1
	if i < len(path) && (path[i] == '"' || path[i] == '\'') {
		quote := path[i]

		var b strings.Builder

		for j := i + 1; j < len(path); j++ {
			switch c := path[j]; {
			case c == '\\' && j+1 < len(path):
				j++
				b.WriteByte(path[j])
			case c == quote && j+1 < len(path) && path[j+1] == ']':
				return b.String(), j + 2
			default:
				b.WriteByte(c)
			}
		}

		return path[start:], len(path)
	}

	end := strings.IndexByte(path[i:], ']')
	if end < 0 {
		return path[start:], len(path)
	}

	return strings.TrimSpace(path[i : i+end]), i + end + 1
}
