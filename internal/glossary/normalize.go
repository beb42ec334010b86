package glossary

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text (NFKD) and removes combining marks, so accented
// and unaccented spellings compare equal.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize produces the canonical comparison key for a word: surrounding
// whitespace trimmed, lowercased, accents stripped. It never fails; if the
// transform chain rejects the input the lowercased form is returned as-is.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		return text
	}
	return stripped
}
