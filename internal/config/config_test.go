package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MAZESOLVE_LOG_LEVEL", "")
	t.Setenv("MAZESOLVE_FORMAT", "")
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, config.FormatText, cfg.Output.Format)
	assert.True(t, cfg.Output.ShowPath)
	assert.True(t, cfg.Output.ShowGrid)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "mazesolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n  show_grid: false\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.False(t, cfg.Output.ShowGrid)
	assert.True(t, cfg.Output.ShowPath, "unset keys keep their default")
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unterminated"), 0o600))

	cfg, err := config.Load(path)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "mazesolve.yaml")
	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Development = true
	cfg.Output.ShowPath = false
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MAZESOLVE_LOG_LEVEL", "error")
	t.Setenv("MAZESOLVE_FORMAT", "yaml")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"Defaults", func(*config.Config) {}, true},
		{"DebugYAML", func(c *config.Config) { c.Logging.Level = "debug"; c.Output.Format = "yaml" }, true},
		{"BadLevel", func(c *config.Config) { c.Logging.Level = "verbose" }, false},
		{"EmptyLevel", func(c *config.Config) { c.Logging.Level = "" }, false},
		{"BadFormat", func(c *config.Config) { c.Output.Format = "json" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
}
