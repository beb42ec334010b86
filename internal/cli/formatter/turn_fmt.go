package formatter

import (
	"fmt"
	"strings"

	"github.com/onneile/molemi/internal/domain"
)

// FormatTurn renders one conversation turn for terminal review.
func FormatTurn(t *domain.Turn) string {
	var b strings.Builder

	b.WriteString(Dim(strings.Repeat("─", 72)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
		Bold("Turn"),
		StyleBlue.Render(t.ID),
		StyleFg.Render(t.Phone),
		Dim(t.CreatedAt.Format("2006-01-02 15:04")),
	))
	b.WriteString(fmt.Sprintf("%s lang=%s intent=%s model=%s backend=%s\n",
		Dim("meta:"),
		orDash(string(t.LangDetected)),
		orDash(t.Intent),
		orDash(t.LLMModel),
		orDash(t.TranslationBackend),
	))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render("Q:   "), t.QuestionRaw))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render("Q_EN:"), t.QuestionEN))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleBlue.Render("A_EN:"), t.AnswerEN))
	b.WriteString(fmt.Sprintf("%s %s\n", StyleBlue.Render("A:   "), t.AnswerFinal))

	if t.SafetyFlags.MentionsDosage || t.SafetyFlags.NeedsHumanReview {
		b.WriteString(StyleYellow.Render(safetyLine(t.SafetyFlags)))
		b.WriteString("\n")
	}
	return b.String()
}

func safetyLine(f domain.SafetyFlags) string {
	var parts []string
	if f.MentionsDosage {
		parts = append(parts, "mentions dosage")
	}
	if f.NeedsHumanReview {
		parts = append(parts, "needs human review")
	}
	return "⚠ " + strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
