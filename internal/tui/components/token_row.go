// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

// SwatchWidth is the width in cells of the color block in a token row.
const SwatchWidth = 6

// nameWidth fits the longest token name ("primary-contrast").
const nameWidth = 18

// RenderTokenRow renders one palette entry as a single line.
func RenderTokenRow(styleSet styles.Styles, entry palette.Entry, selected, showHex bool) string {
	cursor := "  "
	nameStyle := styleSet.Text
	if selected {
		cursor = styleSet.Focus.Render("> ")
		nameStyle = styleSet.Focus
	}

	name := nameStyle.Render(padRight(entry.Token.String(), nameWidth))
	return fmt.Sprintf("%s%s %s %s",
		cursor,
		styles.Swatch(entry.Color, SwatchWidth),
		name,
		styleSet.Muted.Render(FormatValue(entry, showHex)),
	)
}

// RenderTokenDetail renders a multi-line description of an entry.
func RenderTokenDetail(styleSet styles.Styles, entry palette.Entry) string {
	r, g, b := entry.Color.Uint8()
	lines := []string{
		styleSet.Title.Render(entry.Token.String()),
		styles.Swatch(entry.Color, SwatchWidth*3),
		styleSet.Muted.Render("source  ") + styleSet.Text.Render(entry.Source.String()),
		styleSet.Muted.Render("float   ") + styleSet.Text.Render(entry.Color.String()),
		styleSet.Muted.Render("8-bit   ") + styleSet.Text.Render(fmt.Sprintf("%d, %d, %d", r, g, b)),
		styleSet.Muted.Render("hex     ") + styleSet.Text.Render(entry.Hex()),
	}
	return strings.Join(lines, "\n")
}

// FormatValue returns the display value of an entry as hex or floats.
func FormatValue(entry palette.Entry, showHex bool) string {
	if showHex {
		return entry.Hex()
	}
	return entry.Color.String()
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
