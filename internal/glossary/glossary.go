package glossary

import "sync"

// Option configures a Glossary.
type Option func(*Glossary)

// WithScorer overrides the fuzzy similarity scorer.
func WithScorer(s Scorer) Option {
	return func(g *Glossary) { g.scorer = s }
}

// WithThreshold overrides the minimum fuzzy similarity score.
func WithThreshold(t float64) Option {
	return func(g *Glossary) { g.threshold = t }
}

// WithMaxTerms overrides the per-match entry cap.
func WithMaxTerms(n int) Option {
	return func(g *Glossary) { g.maxTerms = n }
}

// Glossary owns the term index and exposes the matching operations. The
// index is built from the CSV source on first use and cached for the life of
// the Glossary; construction is guarded so concurrent first callers observe
// a single build. Create one at startup and share it.
type Glossary struct {
	path      string
	scorer    Scorer
	threshold float64
	maxTerms  int

	mu  sync.Mutex
	idx *Index
}

// New creates a Glossary reading entries from the CSV at path. By default it
// fuzzy-matches with LevenshteinScorer at threshold 80 and caps matches
// at 30 entries.
func New(path string, opts ...Option) *Glossary {
	g := &Glossary{
		path:      path,
		scorer:    LevenshteinScorer{},
		threshold: DefaultThreshold,
		maxTerms:  DefaultMaxTerms,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Index returns the term index, building it on first call.
func (g *Glossary) Index() *Index {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx == nil {
		g.idx = BuildIndex(LoadCSV(g.path))
	}
	return g.idx
}

// Invalidate drops the cached index so the next call to Index rebuilds it
// from the source file. Used by tests only.
func (g *Glossary) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idx = nil
}

// FindTermsSetswana returns glossary entries relevant to Setswana source
// text, capped at the configured limit.
func (g *Glossary) FindTermsSetswana(text string) []Entry {
	return g.findTerms(text, DirectionSetswana)
}

// FindTermsEnglish returns glossary entries relevant to English source text,
// capped at the configured limit.
func (g *Glossary) FindTermsEnglish(text string) []Entry {
	return g.findTerms(text, DirectionEnglish)
}

func (g *Glossary) findTerms(text string, dir Direction) []Entry {
	idx := g.Index()
	lookup, forms, ok := idx.lookup(dir)
	if !ok {
		return nil
	}
	return matchTokens(Tokenize(text), lookup, forms, g.scorer, g.threshold, g.maxTerms)
}

// EntriesForToken matches a single already-normalized token with the same
// exact-then-fuzzy logic, without the usual result cap. An unknown direction
// is a caller bug and returns ErrUnsupportedDirection.
func (g *Glossary) EntriesForToken(token string, dir Direction) ([]Entry, error) {
	idx := g.Index()
	lookup, forms, ok := idx.lookup(dir)
	if !ok {
		return nil, &ErrUnsupportedDirection{Direction: dir}
	}
	return matchTokens([]string{token}, lookup, forms, g.scorer, g.threshold, perTokenLimit), nil
}

// PreviewMatches tokenizes text and returns per-token matches, keeping the
// original surface spelling of each token. Tokens with no matches are
// omitted. Intended for the debug preview command.
func (g *Glossary) PreviewMatches(text string, dir Direction) ([]TokenMatch, error) {
	var out []TokenMatch
	for _, tok := range surfaceTokens(text) {
		entries, err := g.EntriesForToken(tok.Normalized, dir)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		out = append(out, TokenMatch{
			Token:      tok.Raw,
			Normalized: tok.Normalized,
			Entries:    entries,
		})
	}
	return out, nil
}
