package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion
		{"ab", "abc", 1}, // insertion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"algorithm", "altruistic", 6},

		// Case-sensitive
		{"ABC", "abc", 3},
		{"Hello", "hello", 1},

		// Operator tag typos
		{"switch", "switch", 0},
		{"swtich", "switch", 2},        // transposition costs two substitutions
		{"str-2-num", "str-to-num", 2}, // 2->t, insert o
		{"inject-err", "inject-arr", 1},

		// Runes, not bytes
		{"ä", "a", 1},
		{"größe", "grosse", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64 // minimum expected score
	}{
		// Exact match after normalization
		{"moment_format", "moment-format", 1.0},
		{"strReplace", "str-replace", 1.0},
		{"SELECT-MD5", "select-md5", 1.0},

		// Similar names
		{"split-str-to-arr", "split-str-2-arr", 0.8},
		{"swtich", "switch", 0.6},

		// Different names
		{"random-proportion", "exist-select", 0.0},

		// Multi-byte tags count runes, not bytes
		{"größe", "grösse", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := NormalizedLevenshteinScore(tt.a, tt.b)
			if result < tt.minScore {
				t.Errorf("NormalizedLevenshteinScore(%q, %q) = %f, want >= %f",
					tt.a, tt.b, result, tt.minScore)
			}
		})
	}
}

func TestNormalizedLevenshteinScore_Bounds(t *testing.T) {
	if got := NormalizedLevenshteinScore("", "--"); got != 1 {
		t.Errorf("NormalizedLevenshteinScore of two empty tags = %f, want 1", got)
	}

	if got := NormalizedLevenshteinScore("abc", "xyz"); got != 0 {
		t.Errorf("NormalizedLevenshteinScore(%q, %q) = %f, want 0", "abc", "xyz", got)
	}

	if got := NormalizedLevenshteinScore("kitten", "sitting"); got < 0.57 || got > 0.58 {
		t.Errorf("NormalizedLevenshteinScore(%q, %q) = %f, want ~0.571", "kitten", "sitting", got)
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	a := "algorithm"
	bStr := "altruistic"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}

func BenchmarkNormalizedLevenshteinScore(b *testing.B) {
	a := "injectArrAndTemplateRender"
	bStr := "inject-arr-and-template-render"
	for i := 0; i < b.N; i++ {
		NormalizedLevenshteinScore(a, bStr)
	}
}
