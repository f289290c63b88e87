package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteShowCmd)
}

var paletteCmd = &cobra.Command{
	Use:     "palette",
	Aliases: []string{"p"},
	Short:   "Inspect the semantic palette",
}

var paletteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every palette token",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := palette.Default().Entries()
		views := make([]tokenView, 0, len(entries))
		for _, entry := range entries {
			views = append(views, newTokenView(entry))
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, views)
		}
		return printTokenTable(out, views)
	},
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <token>",
	Short: "Show one palette token",
	Example: `  swatch palette show primary
  swatch palette show muted-foreground --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := palette.ParseToken(args[0])
		if err != nil {
			return err
		}
		view := newTokenView(palette.Default().Entry(token))

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, view)
		}

		rows := [][]string{
			{"token", view.Token},
			{"source", view.Source.String()},
			{"float", view.Color.String()},
			{"8-bit", fmt.Sprintf("%d, %d, %d", view.RGB8[0], view.RGB8[1], view.RGB8[2])},
			{"hex", view.Hex},
		}
		if GetConfig().Output.Swatches {
			rows = append(rows, []string{"swatch", styles.Swatch(view.Color, 8)})
		}
		return writeTable(out, nil, rows)
	},
}

// tokenView is the serialized form of a palette entry.
type tokenView struct {
	Token  string      `json:"token" yaml:"token"`
	Source color.OKLCH `json:"source" yaml:"source"`
	Color  color.RGB   `json:"color" yaml:"color"`
	RGB8   [3]uint8    `json:"rgb8" yaml:"rgb8,flow"`
	Hex    string      `json:"hex" yaml:"hex"`
}

func newTokenView(entry palette.Entry) tokenView {
	r, g, b := entry.Color.Uint8()
	return tokenView{
		Token:  entry.Token.String(),
		Source: entry.Source,
		Color:  entry.Color,
		RGB8:   [3]uint8{r, g, b},
		Hex:    entry.Hex(),
	}
}

func printTokenTable(out io.Writer, views []tokenView) error {
	swatches := GetConfig().Output.Swatches
	headers := []string{"TOKEN", "OKLCH", "HEX", "RGB"}
	if swatches {
		headers = append(headers, "")
	}

	rows := make([][]string, 0, len(views))
	for _, view := range views {
		row := []string{
			view.Token,
			view.Source.String(),
			view.Hex,
			fmt.Sprintf("%d,%d,%d", view.RGB8[0], view.RGB8[1], view.RGB8[2]),
		}
		if swatches {
			row = append(row, styles.Swatch(view.Color, 4))
		}
		rows = append(rows, row)
	}
	return writeTable(out, headers, rows)
}
