// Package translate converts farmer messages between English and
// Setswana, steering the model with matched glossary terms.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/onneile/molemi/internal/domain"
	"github.com/onneile/molemi/internal/glossary"
	"github.com/onneile/molemi/internal/llm"
)

const systemPrompt = "You are a professional translator specialising in agricultural communication " +
	"between English and Setswana (South African Tswana). " +
	"Translate the user's message accurately and faithfully, without adding, removing, " +
	"or interpreting information. Maintain the user's tone and level of formality. " +
	"Use natural, rural Setswana phrasing where appropriate. " +
	"If a term is ambiguous, choose the most practical farming-related meaning based on context. " +
	"If you are uncertain, provide your best direct translation without explanation."

const toEnglishInstruction = "Translate from Setswana (South African Tswana) into English. " +
	"Do not add explanations, just translate."

const toSetswanaInstruction = "Translate from English into Setswana (South African Tswana). " +
	"Keep it natural and easy for rural farmers to understand. " +
	"Do not add explanations, just translate."

// UnsupportedPairError indicates a language pair outside en<->tsn.
type UnsupportedPairError struct {
	Source domain.Language
	Target domain.Language
}

func (e UnsupportedPairError) Error() string {
	return fmt.Sprintf("unsupported translation direction: %s -> %s", e.Source, e.Target)
}

// Translator produces en<->tsn translations backed by a language model.
type Translator struct {
	client   llm.Client
	glossary *glossary.Glossary
}

// NewTranslator creates a Translator. The glossary may hold zero
// entries; translation then proceeds without term guidance.
func NewTranslator(client llm.Client, gl *glossary.Glossary) *Translator {
	return &Translator{client: client, glossary: gl}
}

// Translate converts text from source to target language. When source
// equals target the text is returned unchanged without a model call.
// Only en<->tsn pairs are supported.
func (t *Translator) Translate(ctx context.Context, text string, source, target domain.Language) (string, error) {
	if source == target {
		return text, nil
	}
	if !supportedPair(source, target) {
		return "", UnsupportedPairError{Source: source, Target: target}
	}

	prompt := systemPrompt + " "
	if source == domain.LangSetswana {
		prompt += toEnglishInstruction
	} else {
		prompt += toSetswanaInstruction
	}

	if block := t.glossaryBlock(text, source); block != "" {
		prompt += "\n\n" + block
	}

	resp, err := t.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTranslate,
		SystemPrompt: prompt,
		Messages:     []llm.ChatMessage{{Role: llm.RoleUser, Content: text}},
	})
	if err != nil {
		return "", fmt.Errorf("translating %s->%s: %w", source, target, err)
	}
	return strings.TrimSpace(resp.Text), nil
}

func supportedPair(source, target domain.Language) bool {
	ok := func(l domain.Language) bool {
		return l == domain.LangEnglish || l == domain.LangSetswana
	}
	return ok(source) && ok(target)
}

// glossaryBlock renders matched terms as an authoritative mapping for
// the system prompt. Returns "" when nothing in text matches, so the
// prompt stays compact for ordinary messages.
func (t *Translator) glossaryBlock(text string, source domain.Language) string {
	var entries []glossary.Entry
	var header string

	if source == domain.LangSetswana {
		entries = t.glossary.FindTermsSetswana(text)
		header = "Setswana → English glossary (use these translations for the terms below):"
	} else {
		entries = t.glossary.FindTermsEnglish(text)
		header = "English → Setswana glossary (use these translations for the terms below):"
	}
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(header)
	for _, e := range entries {
		b.WriteString("\n")
		if source == domain.LangSetswana {
			b.WriteString(e.SetswanaPreferred)
			b.WriteString(" → ")
			b.WriteString(e.EnglishLabel)
			if len(e.SetswanaVariants) > 0 {
				b.WriteString(" (variants: ")
				b.WriteString(strings.Join(e.SetswanaVariants, ", "))
				b.WriteString(")")
			}
		} else {
			b.WriteString(e.EnglishLabel)
			b.WriteString(" → ")
			b.WriteString(e.SetswanaPreferred)
		}
	}
	return b.String()
}
