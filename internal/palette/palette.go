package palette

import (
	"sync"

	"github.com/opencode-ai/swatch/internal/color"
)

// Entry pairs a token with its source and resolved display color.
type Entry struct {
	Token  Token       `json:"token" yaml:"token"`
	Source color.OKLCH `json:"source" yaml:"source"`
	Color  color.RGB   `json:"color" yaml:"color"`
}

// Hex returns the resolved color as "#rrggbb".
func (e Entry) Hex() string {
	return e.Color.Hex()
}

// Palette holds the resolved display color of every token.
// It is immutable after New returns and safe for concurrent reads.
type Palette struct {
	colors [tokenCount]color.RGB
}

// New resolves each token definition through the converter exactly once.
func New() *Palette {
	p := &Palette{}
	for i, def := range definitions {
		p.colors[i] = color.Convert(def.source)
	}
	return p
}

var (
	defaultOnce    sync.Once
	defaultPalette *Palette
)

// Default returns the process-wide palette, resolving it on first use.
func Default() *Palette {
	defaultOnce.Do(func() {
		defaultPalette = New()
	})
	return defaultPalette
}

// Lookup returns the display color of t.
func (p *Palette) Lookup(t Token) color.RGB {
	return p.colors[t]
}

// Entry returns the full entry for t.
func (p *Palette) Entry(t Token) Entry {
	return Entry{Token: t, Source: Definition(t), Color: p.colors[t]}
}

// Entries returns every entry in token order.
func (p *Palette) Entries() []Entry {
	entries := make([]Entry, 0, tokenCount)
	for _, t := range Tokens() {
		entries = append(entries, p.Entry(t))
	}
	return entries
}

// Hex returns the display color of t as "#rrggbb".
func (p *Palette) Hex(t Token) string {
	return p.colors[t].Hex()
}
