package match

// Levenshtein returns the number of rune insertions, deletions and
// substitutions needed to turn tag a into tag b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			sub := diag
			if ra[i-1] != rb[j-1] {
				sub++
			}

			diag = row[i]
			row[i] = min(row[i]+1, row[i-1]+1, sub)
		}
	}

	return row[len(ra)]
}

// NormalizedLevenshteinScore scores how close an unknown operator tag is to a
// registered one, from 0 (nothing shared) to 1 (same tag once case and
// separators are ignored), so "moment_format" scores 1 against "moment-format".
func NormalizedLevenshteinScore(a, b string) float64 {
	na, nb := []rune(NormalizeIdent(a)), []rune(NormalizeIdent(b))

	longest := max(len(na), len(nb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(string(na), string(nb)))/float64(longest)
}
