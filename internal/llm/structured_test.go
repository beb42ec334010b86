package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleOutput struct {
	Intent string `json:"intent"`
	Answer string `json:"answer"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	out, err := ExtractJSON[sampleOutput](`{"intent":"crop","answer":"rotate fields"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "crop", out.Intent)
	assert.Equal(t, "rotate fields", out.Answer)
}

func TestExtractJSON_CodeFence(t *testing.T) {
	raw := "```json\n{\"intent\":\"pest\",\"answer\":\"check leaves\"}\n```"
	out, err := ExtractJSON[sampleOutput](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "pest", out.Intent)
}

func TestExtractJSON_FenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"intent\":\"pest\",\"answer\":\"ok\"}\n```"
	out, err := ExtractJSON[sampleOutput](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "pest", out.Intent)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Here is the result: {"intent":"soil","answer":"test pH"} hope that helps`
	out, err := ExtractJSON[sampleOutput](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "soil", out.Intent)
}

func TestExtractJSON_NestedObject(t *testing.T) {
	type nested struct {
		Flags struct {
			Dosage bool `json:"dosage"`
		} `json:"flags"`
	}
	out, err := ExtractJSON[nested](`{"flags":{"dosage":true}}`, nil)
	require.NoError(t, err)
	assert.True(t, out.Flags.Dosage)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	out, err := ExtractJSON[sampleOutput](`{"intent":"a}b","answer":"c{d"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "a}b", out.Intent)
	assert.Equal(t, "c{d", out.Answer)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[sampleOutput]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_UnbalancedObject(t *testing.T) {
	_, err := ExtractJSON[sampleOutput](`{"intent":"crop"`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_MalformedJSON(t *testing.T) {
	_, err := ExtractJSON[sampleOutput](`{intent: crop}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorAccepts(t *testing.T) {
	v := ValidatorFunc[sampleOutput](func(s sampleOutput) error {
		if s.Intent == "" {
			return errors.New("intent required")
		}
		return nil
	})
	out, err := ExtractJSON[sampleOutput](`{"intent":"crop","answer":"ok"}`, v)
	require.NoError(t, err)
	assert.Equal(t, "crop", out.Intent)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	v := ValidatorFunc[sampleOutput](func(s sampleOutput) error {
		if s.Intent == "" {
			return errors.New("intent required")
		}
		return nil
	})
	_, err := ExtractJSON[sampleOutput](`{"answer":"ok"}`, v)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
