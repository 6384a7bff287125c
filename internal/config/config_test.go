package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("RESUMERAG_TEST_TOKEN", "hf_test_token")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `params:
  hf_token: ${RESUMERAG_TEST_TOKEN}
  model: meta-llama/Llama-3.2-3B-Instruct
input:
  cv: testdata/resume.docx
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hf_test_token", cfg.Params.HFToken)
	assert.Equal(t, "testdata/resume.docx", cfg.Input.CV)
}

func TestLoad_UnsetPlaceholderExpandsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "params:\n  hf_token: ${RESUMERAG_DOES_NOT_EXIST}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Params.HFToken)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "catalog", cfg.Splitter.Policy)
	assert.Equal(t, 1000, cfg.Index.MaxFeatures)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, 500, cfg.Params.MaxAnswerTokens)
	assert.Equal(t, 300, cfg.Params.MaxSummaryTokens)
	assert.InDelta(t, 0.7, cfg.Params.Temperature, 1e-6)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "retrieval:\n  top_k: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, "catalog", cfg.Splitter.Policy)
	assert.Equal(t, 1000, cfg.Index.MaxFeatures)
}
