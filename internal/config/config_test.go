package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "primary", cfg.TUI.Highlight)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "output format", mutate: func(c *Config) { c.Output.Format = "xml" }, field: "output.format"},
		{name: "log format", mutate: func(c *Config) { c.Logging.Format = "pretty" }, field: "logging.format"},
		{name: "database path", mutate: func(c *Config) { c.Database.Path = " " }, field: "database.path"},
		{name: "port", mutate: func(c *Config) { c.Server.Port = 70000 }, field: "server.port"},
		{name: "metrics collides", mutate: func(c *Config) { c.Server.MetricsPort = c.Server.Port }, field: "server.metrics_port"},
		{name: "highlight token", mutate: func(c *Config) { c.TUI.Highlight = "chartreuse" }, field: "tui.highlight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `logging:
  level: debug
  format: json
output:
  format: JSON
  swatches: false
database:
  path: ` + filepath.Join(dir, "snap.db") + `
server:
  port: 9000
  metrics_port: 0
tui:
  highlight: accent
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Swatches)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 0, cfg.Server.MetricsPort)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "accent", cfg.TUI.Highlight)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: table\n"), 0644))

	t.Setenv("SWATCH_OUTPUT_FORMAT", "yaml")
	t.Setenv("SWATCH_SERVER_PORT", "8123")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui:\n  highlight: nope\n"), 0644))

	_, err := Load(path)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "tui.highlight", vErr.Field)
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/swatch", DefaultConfigDir())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "swatch"), DefaultConfigDir())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x.db"), expandHome("~/x.db"))
	assert.Equal(t, "/abs/x.db", expandHome("/abs/x.db"))
}
