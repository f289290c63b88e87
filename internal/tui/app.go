// Package tui implements the swatch palette browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/swatch/internal/palette"
	"github.com/opencode-ai/swatch/internal/tui/components"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

// Config configures the TUI.
type Config struct {
	// Palette is the palette to browse; nil means palette.Default().
	Palette *palette.Palette
	// Highlight is the token used for the selection cursor.
	Highlight palette.Token
}

// Run launches the TUI with the default palette.
func Run() error {
	return RunWithConfig(Config{Highlight: palette.Primary})
}

// RunWithConfig launches the TUI program.
func RunWithConfig(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width   int
	height  int
	styles  styles.Styles
	entries []palette.Entry
	cursor  int
	showHex bool
	detail  bool
}

const (
	minWidth  = 60
	minHeight = 20
)

func newModel(cfg Config) model {
	p := cfg.Palette
	if p == nil {
		p = palette.Default()
	}
	highlight := cfg.Highlight
	if !highlight.Valid() {
		highlight = palette.Primary
	}

	return model{
		styles:  styles.BuildStyles(styles.ThemeFromPalette(p, highlight)),
		entries: p.Entries(),
		showHex: true,
		detail:  true,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.entries) - 1
		case "h":
			m.showHex = !m.showHex
		case "d", "enter":
			m.detail = !m.detail
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	lines := []string{
		m.styles.Title.Render("swatch palette"),
		"",
	}

	for i, entry := range m.entries {
		lines = append(lines, components.RenderTokenRow(m.styles, entry, i == m.cursor, m.showHex))
	}

	if m.detail && len(m.entries) > 0 {
		lines = append(lines, "", components.RenderTokenDetail(m.styles, m.entries[m.cursor]))
	}

	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: up/down move | h hex/float | d detail | q quit"))

	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

// Selected returns the entry under the cursor.
func (m model) Selected() palette.Entry {
	return m.entries[m.cursor]
}
