package search

import "strings"

// Grades assigned by the scorer, strongest rule first.
const (
	scoreExact     = 1.0
	scorePrefix    = 0.9
	scoreSubstring = 0.7

	// Fuzzy similarity below this threshold counts as no match.
	fuzzyThreshold = 0.3
)

// Score grades how well candidate matches keyword, in [0, 1]. Comparison is
// case-insensitive and the first matching rule wins: exact equality, prefix,
// substring, then a normalized common-subsequence ratio. An empty keyword or
// candidate never matches.
func Score(keyword, candidate string) float64 {
	if keyword == "" || candidate == "" {
		return 0.0
	}

	keywordLower := strings.ToLower(keyword)
	candidateLower := strings.ToLower(candidate)

	if keywordLower == candidateLower {
		return scoreExact
	}
	if strings.HasPrefix(candidateLower, keywordLower) {
		return scorePrefix
	}
	if strings.Contains(candidateLower, keywordLower) {
		return scoreSubstring
	}

	if ratio := similarityRatio(keywordLower, candidateLower); ratio > fuzzyThreshold {
		return ratio
	}
	return 0.0
}

// similarityRatio is 2*M / (len(a)+len(b)) where M is the length of the
// longest common subsequence of a and b, computed over runes.
func similarityRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 0.0
	}

	// Single-row LCS dynamic program.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return 2.0 * float64(prev[len(rb)]) / float64(total)
}
