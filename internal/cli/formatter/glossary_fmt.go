package formatter

import (
	"fmt"
	"strings"

	"github.com/onneile/molemi/internal/glossary"
)

// FormatTokenMatch renders one token's glossary matches.
func FormatTokenMatch(m glossary.TokenMatch) string {
	var b strings.Builder

	token := m.Token
	if m.Normalized != "" && m.Normalized != m.Token {
		token = fmt.Sprintf("%s (%s)", m.Token, m.Normalized)
	}
	b.WriteString(Bold("token: ") + StyleGreen.Render(token))

	for _, e := range m.Entries {
		b.WriteString("\n  ")
		b.WriteString(StyleFg.Render(e.SetswanaPreferred))
		b.WriteString(Dim("  <->  "))
		b.WriteString(StyleFg.Render(e.EnglishLabel))
		if len(e.SetswanaVariants) > 0 {
			b.WriteString(Dim(fmt.Sprintf(" (variants: %s)", strings.Join(e.SetswanaVariants, ", "))))
		}
	}
	return b.String()
}
