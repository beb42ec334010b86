package domain

// Language identifies the language the assistant detected in a farmer's
// message. Detection is done by the LLM, so "mixed" and "other" are
// first-class outcomes rather than errors.
type Language string

const (
	LangEnglish  Language = "en"
	LangSetswana Language = "tsn"
	LangMixed    Language = "mixed"
	LangOther    Language = "other"
)

// ValidLanguages is the canonical set of accepted language codes.
var ValidLanguages = map[Language]bool{
	LangEnglish: true, LangSetswana: true, LangMixed: true, LangOther: true,
}

// ParseLanguage converts a raw code into a Language, falling back to
// LangOther for anything unrecognized.
func ParseLanguage(code string) Language {
	if l := Language(code); ValidLanguages[l] {
		return l
	}
	return LangOther
}

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)
