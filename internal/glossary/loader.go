package glossary

import (
	"encoding/csv"
	"errors"
	"os"
	"strings"
)

// csv columns, by header name
const (
	colEnglishLabel      = "english_label"
	colEnglishPOS        = "english_pos"
	colSetswanaPreferred = "setswana_preferred"
	colSetswanaVariants  = "setswana_variants"
	colSetswanaPOS       = "setswana_pos"
)

// variantDelimiter separates alternate spellings inside the
// setswana_variants column.
const variantDelimiter = "|"

// LoadCSV reads glossary entries from a CSV file with a header row.
// A missing or unreadable file yields zero entries rather than an error:
// the assistant degrades to translating without glossary augmentation.
// Rows missing english_label or setswana_preferred are skipped silently.
func LoadCSV(path string) []Entry {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var entries []Entry
	for {
		row, err := r.Read()
		if err != nil {
			// A parse error covers one row; the reader resumes at the
			// next line. Anything else (EOF, read failure) ends the load.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			break
		}

		englishLabel := field(row, colEnglishLabel)
		setswanaPreferred := field(row, colSetswanaPreferred)
		if englishLabel == "" || setswanaPreferred == "" {
			continue
		}

		entries = append(entries, Entry{
			EnglishLabel:      englishLabel,
			EnglishPOS:        field(row, colEnglishPOS),
			SetswanaPreferred: setswanaPreferred,
			SetswanaVariants:  splitVariants(field(row, colSetswanaVariants)),
			SetswanaPOS:       field(row, colSetswanaPOS),
		})
	}

	return entries
}

func splitVariants(raw string) []string {
	if raw == "" {
		return nil
	}
	var variants []string
	for _, v := range strings.Split(raw, variantDelimiter) {
		if v = strings.TrimSpace(v); v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}
