package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	// Explicit CONFIG_PATH to a missing file is an error.
	assert.Error(t, err)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GLOSSARY_CSV_PATH", "/data/glossary.csv")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/data/glossary.csv", cfg.Glossary.CSVPath)
	assert.Equal(t, 80.0, cfg.Glossary.FuzzyThreshold)
	assert.Equal(t, 30, cfg.Glossary.MaxTerms)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.True(t, cfg.LLM.AgentMode)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 7070
glossary:
  csv_path: data/terms.csv
  fuzzy_threshold: 85
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "data/terms.csv", cfg.Glossary.CSVPath)
	assert.Equal(t, 85.0, cfg.Glossary.FuzzyThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "6060")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestValidate_RejectsBadThreshold(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GLOSSARY_FUZZY_THRESHOLD", "150")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_RejectsBadPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "0")

	_, err := Load()
	assert.Error(t, err)
}
