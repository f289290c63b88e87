// Package cli implements the swatch command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/config"
	"github.com/opencode-ai/swatch/internal/db"
	"github.com/opencode-ai/swatch/internal/logging"
)

// Version is stamped at build time.
var Version = "dev"

var (
	cfgFile        string
	jsonOutput     bool
	jsonlOutput    bool
	yamlOutput     bool
	logLevel       string
	noColor        bool
	noProgress     bool
	nonInteractive bool

	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Resolve OKLCH colors and the semantic palette to display sRGB",
	Long: `swatch converts OKLCH colors to display-ready sRGB and exposes the
fixed semantic palette used by the interface.

Colors are resolved once per process. Snapshots record the resolved palette
for later comparison.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentPreRunE = initApp

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or $XDG_CONFIG_HOME/swatch/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&yamlOutput, "yaml", false, "output YAML")
	flags.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt, use defaults")

	rootCmd.MarkFlagsMutuallyExclusive("json", "jsonl", "yaml")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func initApp(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader()
	if err := loader.Viper().BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}

	cfg, err := loader.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logger = logging.Component("cli")
	logger.Debug().Str("config", cfg.Path).Str("command", cmd.CommandPath()).Msg("configuration loaded")

	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		appConfig.Output.Swatches = false
	}
	return nil
}

// GetConfig returns the loaded configuration, or the defaults before
// the root command has run.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	database, err := db.Open(ctx, GetConfig().Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}
