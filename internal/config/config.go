// Package config loads swatch configuration from files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/swatch/internal/palette"
)

// Config is the top-level swatch configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Output   OutputConfig   `mapstructure:"output"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	TUI      TUIConfig      `mapstructure:"tui"`

	// Path is the file the configuration was read from, if any.
	Path string `mapstructure:"-"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	// Format is one of table, json, jsonl, yaml.
	Format string `mapstructure:"format"`
	// Swatches renders colored blocks next to table rows.
	Swatches bool `mapstructure:"swatches"`
}

// DatabaseConfig locates the snapshot database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures `swatch serve`.
type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

// TUIConfig configures the interactive browser.
type TUIConfig struct {
	// Highlight names the token used for the selection cursor.
	Highlight string `mapstructure:"highlight"`
}

// Default ports for the palette service.
const (
	DefaultPort        = 7420
	DefaultMetricsPort = 7421
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format:   "table",
			Swatches: true,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(DefaultDataDir(), "swatch.db"),
		},
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        DefaultPort,
			MetricsPort: DefaultMetricsPort,
		},
		TUI: TUIConfig{
			Highlight: "primary",
		},
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/swatch or ~/.config/swatch.
func DefaultConfigDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "swatch")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", ".swatch")
	}
	return filepath.Join(home, ".config", "swatch")
}

// DefaultDataDir returns $XDG_DATA_HOME/swatch or ~/.local/share/swatch.
func DefaultDataDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, "swatch")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", ".swatch")
	}
	return filepath.Join(home, ".local", "share", "swatch")
}

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

var (
	validFormats    = map[string]bool{"table": true, "json": true, "jsonl": true, "yaml": true}
	validLogFormats = map[string]bool{"console": true, "json": true}
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !validFormats[c.Output.Format] {
		return &ValidationError{Field: "output.format", Message: fmt.Sprintf("unsupported format %q", c.Output.Format)}
	}
	if !validLogFormats[c.Logging.Format] {
		return &ValidationError{Field: "logging.format", Message: fmt.Sprintf("unsupported format %q", c.Logging.Format)}
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return &ValidationError{Field: "database.path", Message: "path is required"}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &ValidationError{Field: "server.port", Message: fmt.Sprintf("port %d out of range", c.Server.Port)}
	}
	if c.Server.MetricsPort < 0 || c.Server.MetricsPort > 65535 {
		return &ValidationError{Field: "server.metrics_port", Message: fmt.Sprintf("port %d out of range", c.Server.MetricsPort)}
	}
	if c.Server.MetricsPort != 0 && c.Server.MetricsPort == c.Server.Port {
		return &ValidationError{Field: "server.metrics_port", Message: "must differ from server.port"}
	}
	if _, err := palette.ParseToken(c.TUI.Highlight); err != nil {
		return &ValidationError{Field: "tui.highlight", Message: err.Error()}
	}
	return nil
}
