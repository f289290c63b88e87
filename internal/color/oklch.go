// Package color converts OKLCH colors into display-ready sRGB.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OKLCH is a color in the OKLCH cylindrical space.
// L is lightness (nominally [0, 1]), C is chroma (nominally [0, 0.4]) and
// H is the hue angle in degrees. Values outside the nominal ranges are
// accepted and converted like any other.
type OKLCH struct {
	L float64 `json:"l" yaml:"l"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
}

// LCH builds an OKLCH value.
func LCH(l, c, h float64) OKLCH {
	return OKLCH{L: l, C: c, H: h}
}

// String formats the color in CSS notation.
func (c OKLCH) String() string {
	return fmt.Sprintf("oklch(%s %s %s)", formatFloat(c.L), formatFloat(c.C), formatFloat(c.H))
}

// RGB converts the color for display. It is shorthand for Convert(c).
func (c OKLCH) RGB() RGB {
	return Convert(c)
}

// ParseOKLCH parses "L C H", "L,C,H" or "oklch(L C H)".
func ParseOKLCH(s string) (OKLCH, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return OKLCH{}, fmt.Errorf("%w: empty input", ErrInvalidOKLCH)
	}

	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "oklch(") {
		if !strings.HasSuffix(lower, ")") {
			return OKLCH{}, fmt.Errorf("%w: missing closing parenthesis in %q", ErrInvalidOKLCH, s)
		}
		text = text[len("oklch(") : len(text)-1]
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 3 {
		return OKLCH{}, fmt.Errorf("%w: want 3 components, got %d in %q", ErrInvalidOKLCH, len(fields), s)
	}

	values := make([]float64, 3)
	for i, field := range fields {
		value, err := parseComponent(field)
		if err != nil {
			return OKLCH{}, fmt.Errorf("%w: component %d: %v", ErrInvalidOKLCH, i+1, err)
		}
		values[i] = value
	}

	return LCH(values[0], values[1], values[2]), nil
}

// parseComponent accepts a plain number or a percentage ("75%" = 0.75).
// A trailing "deg" is allowed so hues can be written the CSS way.
func parseComponent(field string) (float64, error) {
	field = strings.TrimSuffix(strings.ToLower(field), "deg")
	percent := strings.HasSuffix(field, "%")
	field = strings.TrimSuffix(field, "%")
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("non-finite value %q", field)
	}
	if percent {
		return value / 100, nil
	}
	return value, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
