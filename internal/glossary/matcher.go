package glossary

import "fmt"

const (
	// DefaultMaxTerms caps how many entries a single match returns.
	DefaultMaxTerms = 30
	// DefaultThreshold is the minimum similarity score for a fuzzy hit.
	DefaultThreshold = 80.0

	// perTokenLimit effectively disables the cap for single-token lookups
	// used by the preview tool.
	perTokenLimit = 999
)

// matchTokens runs the two-stage match against one side of the index.
//
// Exact pass: tokens that are keys contribute all their entries, in token
// order then per-key entry order. Fuzzy pass: remaining tokens are scored
// against every known form; all forms tied at the token's maximum score are
// accepted when that maximum clears the threshold. Results are deduplicated
// by (EnglishLabel, SetswanaPreferred) preserving first-seen order, then
// truncated to maxTerms.
func matchTokens(tokens []string, lookup map[string][]*Entry, forms []string, scorer Scorer, threshold float64, maxTerms int) []Entry {
	if len(tokens) == 0 {
		return nil
	}

	var matches []*Entry

	var misses []string
	for _, token := range tokens {
		if hits, ok := lookup[token]; ok {
			matches = append(matches, hits...)
		} else {
			misses = append(misses, token)
		}
	}

	if len(misses) > 0 && len(forms) > 0 {
		for _, token := range misses {
			bestScore := 0.0
			var bestForms []string

			for _, form := range forms {
				s := scorer.Score(token, form)
				if s < threshold {
					continue
				}
				switch {
				case s > bestScore:
					bestScore = s
					bestForms = []string{form}
				case s == bestScore:
					bestForms = append(bestForms, form)
				}
			}

			for _, form := range bestForms {
				matches = append(matches, lookup[form]...)
			}
		}
	}

	return dedupe(matches, maxTerms)
}

// dedupe removes repeated entries, keyed by the label pair, preserving
// first-seen order, and truncates to limit.
func dedupe(entries []*Entry, limit int) []Entry {
	type key struct{ en, tsn string }
	seen := make(map[key]bool, len(entries))

	var out []Entry
	for _, e := range entries {
		k := key{e.EnglishLabel, e.SetswanaPreferred}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, *e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// TokenMatch reports the glossary entries matched by one token of a text,
// for debug preview output.
type TokenMatch struct {
	Token      string
	Normalized string
	Entries    []Entry
}

// ErrUnsupportedDirection is returned when a lookup direction is not one of
// the defined constants. This indicates a caller bug, not a data condition.
type ErrUnsupportedDirection struct {
	Direction Direction
}

func (e *ErrUnsupportedDirection) Error() string {
	return fmt.Sprintf("unsupported lookup direction: %q", string(e.Direction))
}
