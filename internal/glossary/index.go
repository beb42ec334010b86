package glossary

// Index is the derived lookup structure over a fixed entry list. It is built
// once and treated as immutable afterwards, so concurrent readers need no
// locking.
type Index struct {
	Entries []Entry

	// normalized form -> entries containing that form, in entry input order
	setswanaLookup map[string][]*Entry
	englishLookup  map[string][]*Entry

	// key slices in first-registration order, for fuzzy scans
	SetswanaForms []string
	EnglishForms  []string
}

// BuildIndex derives an Index from entries. Every normalized Setswana and
// English form of each entry becomes a key; a key can map to several entries
// (homonyms) and an entry is reachable from each of its forms. Forms that
// normalize to the empty string are dropped. Rebuilding from the same entry
// sequence yields the same key→entry mappings.
func BuildIndex(entries []Entry) *Index {
	idx := &Index{
		Entries:        entries,
		setswanaLookup: make(map[string][]*Entry),
		englishLookup:  make(map[string][]*Entry),
	}

	for i := range entries {
		e := &idx.Entries[i]
		for _, form := range e.AllSetswanaForms() {
			key := Normalize(form)
			if key == "" {
				continue
			}
			if _, seen := idx.setswanaLookup[key]; !seen {
				idx.SetswanaForms = append(idx.SetswanaForms, key)
			}
			idx.setswanaLookup[key] = append(idx.setswanaLookup[key], e)
		}
		for _, form := range e.AllEnglishForms() {
			key := Normalize(form)
			if key == "" {
				continue
			}
			if _, seen := idx.englishLookup[key]; !seen {
				idx.EnglishForms = append(idx.EnglishForms, key)
			}
			idx.englishLookup[key] = append(idx.englishLookup[key], e)
		}
	}

	return idx
}

// lookup returns the lookup map and form list for a direction.
// The bool reports whether the direction is valid.
func (idx *Index) lookup(dir Direction) (map[string][]*Entry, []string, bool) {
	switch dir {
	case DirectionSetswana:
		return idx.setswanaLookup, idx.SetswanaForms, true
	case DirectionEnglish:
		return idx.englishLookup, idx.EnglishForms, true
	default:
		return nil, nil, false
	}
}

// Len reports the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.Entries)
}
