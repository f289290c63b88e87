package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <l> <c> <h> | convert <oklch(...)>",
	Short: "Convert an OKLCH color to display sRGB",
	Long: `Convert an OKLCH color to gamma-encoded sRGB.

Out-of-gamut results are clipped per channel to [0, 1].`,
	Example: `  swatch convert 0.75 0.15 195
  swatch convert "oklch(55% 0.22 25deg)"
  swatch convert 0.55,0.22,25 --json`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := color.ParseOKLCH(strings.Join(args, " "))
		if err != nil {
			return err
		}

		result := newConversionView(src)
		logger.Debug().Str("source", src.String()).Str("hex", result.Hex).Msg("converted")

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, result)
		}
		return printConversion(out, result)
	},
}

// conversionView is the output of `swatch convert`.
type conversionView struct {
	Source color.OKLCH `json:"source" yaml:"source"`
	Color  color.RGB   `json:"color" yaml:"color"`
	RGB8   [3]uint8    `json:"rgb8" yaml:"rgb8,flow"`
	Hex    string      `json:"hex" yaml:"hex"`
}

func newConversionView(src color.OKLCH) conversionView {
	rgb := color.Convert(src)
	r, g, b := rgb.Uint8()
	return conversionView{
		Source: src,
		Color:  rgb,
		RGB8:   [3]uint8{r, g, b},
		Hex:    rgb.Hex(),
	}
}

func printConversion(out io.Writer, view conversionView) error {
	rows := [][]string{
		{"source", view.Source.String()},
		{"float", view.Color.String()},
		{"8-bit", fmt.Sprintf("%d, %d, %d", view.RGB8[0], view.RGB8[1], view.RGB8[2])},
		{"hex", view.Hex},
	}
	if GetConfig().Output.Swatches {
		rows = append(rows, []string{"swatch", styles.Swatch(view.Color, 8)})
	}
	return writeTable(out, nil, rows)
}
