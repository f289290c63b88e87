package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse the palette interactively",
	Long:  "Launch the swatch terminal user interface (TUI).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the palette subcommands",
			NextStep: "swatch palette list",
		}
	}

	highlight, err := palette.ParseToken(GetConfig().TUI.Highlight)
	if err != nil {
		return err
	}

	return tui.RunWithConfig(tui.Config{
		Palette:   palette.Default(),
		Highlight: highlight,
	})
}
