package match

import "sort"

// Candidate is a known name scored against the name being looked up.
type Candidate struct {
	Name string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against name.
// Returns candidates sorted by score (descending), then by name.
func RankCandidates(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:  k,
			Score: NormalizedLevenshteinScore(name, k),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n known names scoring at least threshold against name.
func Suggest(name string, known []string, threshold float64, n int) []string {
	var names []string

	for _, c := range RankCandidates(name, known).AboveThreshold(threshold).Top(n) {
		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
