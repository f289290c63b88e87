package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SWATCH_OUTPUT_FORMAT.
const EnvPrefix = "SWATCH"

// Loader reads configuration with viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader seeded with the defaults.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.swatches", cfg.Output.Swatches)
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("server.host", cfg.Server.Host)
	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("server.metrics_port", cfg.Server.MetricsPort)
	v.SetDefault("tui.highlight", cfg.TUI.Highlight)
}

// Viper exposes the underlying instance so CLI flags can be bound to it.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the config file at path, or searches the default locations
// when path is empty. A missing file in the search path is not an error.
func (l *Loader) Load(path string) (*Config, error) {
	// A .env next to the working directory seeds SWATCH_* variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		for _, dir := range SearchPaths() {
			l.v.AddConfigPath(dir)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Path = l.v.ConfigFileUsed()
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Database.Path = expandHome(cfg.Database.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is a convenience wrapper around NewLoader().Load.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// SearchPaths lists config directories in precedence order.
func SearchPaths() []string {
	return []string{".", DefaultConfigDir()}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
