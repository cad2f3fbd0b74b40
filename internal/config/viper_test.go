package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from an empty directory so no config file is picked up.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 1000.0, cfg.Analysis.FaceValue)
	assert.Equal(t, "California", cfg.Analysis.DefaultState)
	assert.Equal(t, "Single", cfg.Analysis.DefaultFilingStatus)
	assert.Empty(t, cfg.Analysis.TaxTablesFile)
}

func TestInitializeConfigFromEnv(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(cwd) }()

	t.Setenv("BOND_LOG_LEVEL", "debug")
	t.Setenv("BOND_ANALYSIS_DEFAULT_STATE", "New York")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "New York", cfg.Analysis.DefaultState)
}

func TestInitializeConfigFromFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	content := `
log:
  level: warn
  format: json
analysis:
  face_value: 100
  default_state: Texas
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 100.0, cfg.Analysis.FaceValue)
	assert.Equal(t, "Texas", cfg.Analysis.DefaultState)
}

func TestInitializeConfigInvalidValues(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(cwd) }()

	t.Setenv("BOND_LOG_LEVEL", "loudest")
	_, err = InitializeConfig()
	assert.Error(t, err)

	t.Setenv("BOND_LOG_LEVEL", "info")
	t.Setenv("BOND_ANALYSIS_FACE_VALUE", "-1")
	_, err = InitializeConfig()
	assert.Error(t, err)
}
