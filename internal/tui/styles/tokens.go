// Package styles maps palette tokens onto lipgloss styles.
package styles

import "github.com/opencode-ai/swatch/internal/palette"

// ThemeTokens defines the semantic color roles for the TUI as hex strings.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Alert      string
	Error      string
	Info       string
}

// Theme bundles the resolved tokens with the palette they came from.
type Theme struct {
	Name    string
	Tokens  ThemeTokens
	Palette *palette.Palette
}

// DefaultTheme builds a theme from the process-wide palette.
func DefaultTheme() Theme {
	return ThemeFromPalette(palette.Default(), palette.Primary)
}

// ThemeFromPalette derives theme tokens from p. focus picks the token used
// for selection highlights.
func ThemeFromPalette(p *palette.Palette, focus palette.Token) Theme {
	return Theme{
		Name:    "default",
		Palette: p,
		Tokens: ThemeTokens{
			Background: p.Hex(palette.Background),
			Panel:      p.Hex(palette.Card),
			Text:       p.Hex(palette.Foreground),
			TextMuted:  p.Hex(palette.MutedForeground),
			Border:     p.Hex(palette.Border),
			Accent:     p.Hex(palette.Primary),
			Focus:      p.Hex(focus),
			Success:    p.Hex(palette.Success),
			Warning:    p.Hex(palette.Warning),
			Alert:      p.Hex(palette.Alert),
			Error:      p.Hex(palette.Destructive),
			Info:       p.Hex(palette.Accent),
		},
	}
}
