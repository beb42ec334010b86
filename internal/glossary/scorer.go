package glossary

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scorer measures string similarity on a 0–100 scale. Identical strings
// score 100. The matcher accepts a fuzzy hit only when a form achieves
// the maximum score for its token and that maximum clears the threshold.
type Scorer interface {
	Score(a, b string) float64
}

// LevenshteinScorer scores by edit-distance ratio:
//
//	100 * (len(a) + len(b) - distance) / (len(a) + len(b))
//
// measured in runes. A one-character typo in a short word stays above the
// default threshold of 80 ("mpaa" vs "mpa" scores ~85.7).
type LevenshteinScorer struct{}

func (LevenshteinScorer) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	dist := levenshtein.ComputeDistance(a, b)
	if dist >= total {
		return 0
	}
	return 100 * float64(total-dist) / float64(total)
}

// ExactScorer is the degraded-mode scorer: 100 for identical strings,
// 0 otherwise. With it the fuzzy pass finds nothing beyond what the exact
// pass already found.
type ExactScorer struct{}

func (ExactScorer) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	return 0
}
