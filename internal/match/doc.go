// Package match ranks known names against a misspelled one, for "did you
// mean" suggestions in evaluation diagnostics.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: counts rune edits between two operator tags
//   - RankCandidates: ranks known names by similarity
package match
