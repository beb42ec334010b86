package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed structured output beyond what
// JSON decoding enforces.
type SchemaValidator[T any] interface {
	Validate(value T) error
}

// ValidatorFunc adapts a function to SchemaValidator.
type ValidatorFunc[T any] func(value T) error

func (f ValidatorFunc[T]) Validate(value T) error { return f(value) }

// ExtractJSON parses the first JSON object found in raw model output
// into T. Models often wrap JSON in markdown code fences or surround
// it with prose, so the extractor strips fences and scans for a
// balanced object before decoding. If validator is non-nil the parsed
// value must also pass validation.
func ExtractJSON[T any](text string, validator SchemaValidator[T]) (T, error) {
	var zero T

	candidate := extractObject(stripCodeFences(text))
	if candidate == "" {
		return zero, fmt.Errorf("%w: no JSON object in output", ErrInvalidOutput)
	}

	var value T
	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator.Validate(value); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	return value, nil
}

// stripCodeFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line, e.g. "json".
		first := strings.TrimSpace(trimmed[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "{}") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// extractObject returns the first balanced top-level JSON object in
// text, or "" when none exists. Braces inside strings are ignored.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
