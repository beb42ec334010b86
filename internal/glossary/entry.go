// Package glossary matches words in farmer messages against a bilingual
// English–Setswana term list so that translation prompts can carry the
// preferred domain terminology. Matching is two-stage: exact lookup on
// normalized forms, then fuzzy scoring for tokens with no exact hit.
package glossary

// Entry is one English–Setswana term pair. Entries are loaded once from CSV
// and never mutated afterwards.
type Entry struct {
	EnglishLabel      string
	EnglishPOS        string
	SetswanaPreferred string
	SetswanaVariants  []string
	SetswanaPOS       string
}

// AllSetswanaForms returns the preferred Setswana form followed by its
// variants, in source order.
func (e *Entry) AllSetswanaForms() []string {
	forms := make([]string, 0, 1+len(e.SetswanaVariants))
	forms = append(forms, e.SetswanaPreferred)
	forms = append(forms, e.SetswanaVariants...)
	return forms
}

// AllEnglishForms returns every English surface form of the entry.
// Currently just the label; alternate English spellings would slot in here.
func (e *Entry) AllEnglishForms() []string {
	return []string{e.EnglishLabel}
}

// Direction selects which side of the glossary a lookup runs against.
type Direction string

const (
	// DirectionSetswana matches tokens against Setswana forms.
	DirectionSetswana Direction = "tsn"
	// DirectionEnglish matches tokens against English forms.
	DirectionEnglish Direction = "en"
)
