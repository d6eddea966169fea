package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactlint/internal/config"
)

func TestDefaultExcludesStdlib(t *testing.T) {
	assert.False(t, config.Default().IncludeStdlib)
}

func TestParseYAML(t *testing.T) {
	src := []byte(`
soufflePath: /opt/souffle/bin
detectorsEnabled:
  - cell-bounds
  - unbounded-loop
includeStdlib: true
`)
	cfg, err := config.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "/opt/souffle/bin", cfg.SoufflePath)
	assert.Equal(t, []string{"cell-bounds", "unbounded-loop"}, cfg.DetectorsEnabled)
	assert.True(t, cfg.IncludeStdlib)
}

func TestDetectorEnabledEmptyListMeansAll(t *testing.T) {
	cfg := config.Default()
	assert.True(t, cfg.DetectorEnabled("anything"))
}

func TestDetectorEnabledRespectsAllowlist(t *testing.T) {
	cfg := config.Config{DetectorsEnabled: []string{"cell-bounds"}}
	assert.True(t, cfg.DetectorEnabled("cell-bounds"))
	assert.False(t, cfg.DetectorEnabled("unbounded-loop"))
}
