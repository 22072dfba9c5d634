package resolver

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// similarityRatio computes the matching-blocks sequence similarity between
// two strings on a 0-1 scale, case-insensitively. This is the SequenceMatcher
// ratio (2*M / total length over longest matching blocks), deliberately not
// an edit distance; threshold semantics across the resolver depend on it.
func similarityRatio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	matcher := difflib.NewMatcher(runeSlice(a), runeSlice(b))
	return matcher.Ratio()
}

func runeSlice(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// scoredCandidate pairs a candidate string with its similarity to a query.
type scoredCandidate struct {
	Value string
	Score float64
}

// closestMatches returns up to n candidates whose similarity to query clears
// cutoff (inclusive), best first. Ties keep candidate input order, so results
// are deterministic.
func closestMatches(query string, candidates []string, n int, cutoff float64) []scoredCandidate {
	var scored []scoredCandidate
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		score := similarityRatio(query, candidate)
		if score >= cutoff {
			scored = append(scored, scoredCandidate{Value: candidate, Score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}
