package glossary

import "regexp"

// wordPattern matches word-like runs: ASCII letters, the Latin-extended
// accented letters that occur in the glossary data, and the apostrophe and
// hyphen used in Setswana orthography. Digits and punctuation separate words.
var wordPattern = regexp.MustCompile(`[A-Za-zÁÉÍÓÚÜÑáéíóúüñʼ'\-]+`)

// Tokenize splits free text into normalized tokens in source order.
// Duplicates are retained; deduplication happens during matching.
func Tokenize(text string) []string {
	raw := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, w := range raw {
		tokens = append(tokens, Normalize(w))
	}
	return tokens
}

// surfaceToken pairs a token's original spelling with its normalized form.
// Used by the preview tool, which reports matches against the text as typed.
type surfaceToken struct {
	Raw        string
	Normalized string
}

func surfaceTokens(text string) []surfaceToken {
	raw := wordPattern.FindAllString(text, -1)
	tokens := make([]surfaceToken, 0, len(raw))
	for _, w := range raw {
		tokens = append(tokens, surfaceToken{Raw: w, Normalized: Normalize(w)})
	}
	return tokens
}
