// Package palette provides the fixed set of semantic color tokens.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/internal/color"
)

// ErrUnknownToken is returned by ParseToken for names outside the token set.
var ErrUnknownToken = errors.New("unknown color token")

// Token identifies a semantic color role.
type Token int

// The token set is closed; Lookup has no error path for these values.
const (
	Background Token = iota
	Foreground
	Card
	Primary
	PrimaryContrast
	Secondary
	Muted
	MutedForeground
	Border
	Destructive
	Success
	Warning
	Alert
	Accent

	tokenCount int = iota
)

type definition struct {
	name   string
	source color.OKLCH
}

var definitions = [tokenCount]definition{
	Background:      {"background", color.LCH(0.18, 0.04, 250)},
	Foreground:      {"foreground", color.LCH(0.98, 0.0, 0)},
	Card:            {"card", color.LCH(0.22, 0.04, 250)},
	Primary:         {"primary", color.LCH(0.75, 0.15, 195)},
	PrimaryContrast: {"primary-contrast", color.LCH(0.18, 0.04, 250)},
	Secondary:       {"secondary", color.LCH(0.30, 0.05, 250)},
	Muted:           {"muted", color.LCH(0.25, 0.04, 250)},
	MutedForeground: {"muted-foreground", color.LCH(0.65, 0.02, 250)},
	Border:          {"border", color.LCH(0.35, 0.05, 250)},
	Destructive:     {"destructive", color.LCH(0.55, 0.22, 25)},
	Success:         {"success", color.LCH(0.74, 0.18, 145)},
	Warning:         {"warning", color.LCH(0.72, 0.18, 70)},
	Alert:           {"alert", color.LCH(0.72, 0.14, 30)},
	Accent:          {"accent", color.LCH(0.68, 0.22, 320)},
}

// Tokens returns every token in declaration order.
func Tokens() []Token {
	tokens := make([]Token, tokenCount)
	for i := range tokens {
		tokens[i] = Token(i)
	}
	return tokens
}

// Valid reports whether t is one of the declared tokens.
func (t Token) Valid() bool {
	return t >= 0 && int(t) < tokenCount
}

// String returns the kebab-case token name.
func (t Token) String() string {
	if !t.Valid() {
		return fmt.Sprintf("token(%d)", int(t))
	}
	return definitions[t].name
}

// Definition returns the OKLCH source value of a token.
func Definition(t Token) color.OKLCH {
	return definitions[t].source
}

// ParseToken maps a token name to its Token. Matching ignores case and
// accepts underscores or spaces in place of dashes.
func ParseToken(name string) (Token, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	for i, def := range definitions {
		if def.name == normalized {
			return Token(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToken, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Token) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownToken, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Token) UnmarshalText(text []byte) error {
	parsed, err := ParseToken(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
