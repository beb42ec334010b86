package glossary

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleGlossary(t *testing.T, opts ...Option) *Glossary {
	t.Helper()
	return New(writeSampleCSV(t, sampleCSV), opts...)
}

func hasEntry(entries []Entry, english, setswana string) bool {
	for _, e := range entries {
		if e.EnglishLabel == english && e.SetswanaPreferred == setswana {
			return true
		}
	}
	return false
}

func TestGlossary_ExactSetswanaMatch(t *testing.T) {
	g := newSampleGlossary(t)

	results := g.FindTermsSetswana("Mpa")
	require.Len(t, results, 1)
	assert.True(t, hasEntry(results, "abdomen", "mpa"))
}

func TestGlossary_ExactEnglishMatch(t *testing.T) {
	g := newSampleGlossary(t)

	results := g.FindTermsEnglish("abdomen is sore")
	require.Len(t, results, 1)
	assert.True(t, hasEntry(results, "abdomen", "mpa"))
}

func TestGlossary_FuzzyTypoMatch(t *testing.T) {
	g := newSampleGlossary(t)

	results := g.FindTermsSetswana("mpaa")
	require.NotEmpty(t, results)
	assert.True(t, hasEntry(results, "abdomen", "mpa"))
}

func TestGlossary_VariantFormsMatch(t *testing.T) {
	g := newSampleGlossary(t)

	results := g.FindTermsSetswana("gabisa")
	require.NotEmpty(t, results)
	assert.True(t, hasEntry(results, "absorb", "gapa"))
}

func TestGlossary_ThresholdBoundary(t *testing.T) {
	g := newSampleGlossary(t)

	// "gapaxy" scores exactly 80 against "gapa": included.
	results := g.FindTermsSetswana("gapaxy")
	assert.True(t, hasEntry(results, "absorb", "gapa"))

	// "gapaxyz" scores below 80 against every form: excluded.
	results = g.FindTermsSetswana("gapaxyz")
	assert.False(t, hasEntry(results, "absorb", "gapa"))
}

func TestGlossary_FuzzyTiesMatchAllForms(t *testing.T) {
	path := writeSampleCSV(t, `english_label,english_pos,setswana_preferred,setswana_variants,setswana_pos
word,noun,taba,,noun
matter,noun,tabo,,noun
`)
	g := New(path)

	// "tabx" scores 87.5 against both "taba" and "tabo"; both entries win.
	results := g.FindTermsSetswana("tabx")
	assert.True(t, hasEntry(results, "word", "taba"))
	assert.True(t, hasEntry(results, "matter", "tabo"))
}

func TestGlossary_DeduplicatesRepeatedTokens(t *testing.T) {
	g := newSampleGlossary(t)

	results := g.FindTermsSetswana("mpa le mpa le mpa")
	count := 0
	for _, e := range results {
		if e.EnglishLabel == "abdomen" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGlossary_MaxTermsCap(t *testing.T) {
	g := newSampleGlossary(t, WithMaxTerms(2))

	results := g.FindTermsSetswana("mpa gapa monyelo kotsi letlotlo")
	assert.Len(t, results, 2)
	// First-seen order survives truncation.
	assert.Equal(t, "abdomen", results[0].EnglishLabel)
	assert.Equal(t, "absorb", results[1].EnglishLabel)
}

func TestGlossary_DegradedModeExactOnly(t *testing.T) {
	g := newSampleGlossary(t, WithScorer(ExactScorer{}))

	// A near-miss spelling finds nothing without a real scorer.
	assert.Empty(t, g.FindTermsSetswana("mpaa"))
	// Exact spellings still match.
	results := g.FindTermsSetswana("mpa")
	assert.True(t, hasEntry(results, "abdomen", "mpa"))
}

func TestGlossary_EmptyInput(t *testing.T) {
	g := newSampleGlossary(t)
	assert.Empty(t, g.FindTermsSetswana(""))
	assert.Empty(t, g.FindTermsEnglish("   ...   "))
}

func TestGlossary_MissingSourceFile(t *testing.T) {
	g := New(filepath.Join(t.TempDir(), "nonexistent.csv"))

	assert.Equal(t, 0, g.Index().Len())
	assert.Empty(t, g.FindTermsSetswana("mpa"))
	assert.Empty(t, g.FindTermsEnglish("abdomen"))
}

func TestGlossary_IndexCachedUntilInvalidate(t *testing.T) {
	g := newSampleGlossary(t)

	first := g.Index()
	assert.Same(t, first, g.Index())

	g.Invalidate()
	second := g.Index()
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Len(), second.Len())
}

func TestGlossary_EntriesForToken_UnsupportedDirection(t *testing.T) {
	g := newSampleGlossary(t)

	_, err := g.EntriesForToken("mpa", Direction("xx"))
	require.Error(t, err)
	var dirErr *ErrUnsupportedDirection
	assert.ErrorAs(t, err, &dirErr)
}

func TestGlossary_EntriesForToken_NoCap(t *testing.T) {
	g := newSampleGlossary(t, WithMaxTerms(1))

	// The per-token variant ignores the configured cap.
	entries, err := g.EntriesForToken("gapa", DirectionSetswana)
	require.NoError(t, err)
	assert.True(t, hasEntry(entries, "absorb", "gapa"))
}

func TestGlossary_PreviewMatches(t *testing.T) {
	g := newSampleGlossary(t)

	matches, err := g.PreviewMatches("Mpa e botlhoko", DirectionSetswana)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Mpa", matches[0].Token)
	assert.Equal(t, "mpa", matches[0].Normalized)
	assert.True(t, hasEntry(matches[0].Entries, "abdomen", "mpa"))
}

func TestGlossary_EndToEndScenario(t *testing.T) {
	g := newSampleGlossary(t)

	// Case-insensitive exact hit.
	results := g.FindTermsSetswana("Mpa")
	require.True(t, hasEntry(results, "abdomen", "mpa"))

	// Typo tolerance at threshold 80.
	results = g.FindTermsSetswana("mpaa")
	require.True(t, hasEntry(results, "abdomen", "mpa"))

	// English direction: only "abdomen" hits among the three tokens.
	results = g.FindTermsEnglish("abdomen is sore")
	require.Len(t, results, 1)
	assert.True(t, hasEntry(results, "abdomen", "mpa"))
}
