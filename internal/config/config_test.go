package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Scenario: a missing config file yields the built-in defaults rather than
// an error.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "KRPUS", cfg.Port)
	assert.Equal(t, map[string]string{"KRBUS": "KRPUS"}, cfg.PortAliases)
	assert.Equal(t, "MSC", cfg.DischargeAccountCode)
	assert.Equal(t, "MSC", cfg.LoadAccountCode)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "VCI_{port}_{vessel}_{voyage}_{timestamp}.xml", cfg.FilenameFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

// Scenario: file values override defaults; unset keys keep them.
func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
port: sgsin
output_dir: /tmp/vci
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "SGSIN", cfg.Port)
	assert.Equal(t, "/tmp/vci", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "MSC", cfg.LoadAccountCode)
}

// Scenario: invalid values are rejected with a descriptive error.
func TestLoadValidation(t *testing.T) {
	_, err := Load(writeConfig(t, "port: K\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port code")

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")

	_, err = Load(writeConfig(t, "port_aliases:\n  \"\": KRPUS\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alias")
}

// Scenario: NormalizePort maps legacy codes and passes unknown codes
// through.
func TestNormalizePort(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "KRPUS", cfg.NormalizePort("KRBUS"))
	assert.Equal(t, "CNSHA", cfg.NormalizePort("CNSHA"))
}
