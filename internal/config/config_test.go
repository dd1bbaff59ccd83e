package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultInput, cfg.Project.Input)
	assert.Equal(t, DefaultOutputDir, cfg.Project.OutputDir)
	assert.Equal(t, DefaultDBPath, cfg.Project.DB)
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umlgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project:
  input: diagrams/system.puml
  output_dir: out
generator:
  check: true
`), 0644))

	t.Setenv("UMLGEN_OUTPUT_DIR", "env_out")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "diagrams/system.puml", cfg.Project.Input)
	assert.Equal(t, "env_out", cfg.Project.OutputDir)
	assert.Equal(t, DefaultDBPath, cfg.Project.DB)
	assert.True(t, cfg.Generator.Check)
}
