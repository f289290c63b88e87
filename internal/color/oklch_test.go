package color

import (
	"errors"
	stdcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Verify at compile time that RGB implements color.Color.
var _ stdcolor.Color = RGB{}

func TestParseOKLCH(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  OKLCH
	}{
		{name: "space separated", input: "0.75 0.15 195", want: LCH(0.75, 0.15, 195)},
		{name: "comma separated", input: "0.55,0.22,25", want: LCH(0.55, 0.22, 25)},
		{name: "css form", input: "oklch(0.72 0.18 70)", want: LCH(0.72, 0.18, 70)},
		{name: "css upper", input: "OKLCH(0.5, 0.1, 30deg)", want: LCH(0.5, 0.1, 30)},
		{name: "percent lightness", input: "oklch(75% 0.15 195)", want: LCH(0.75, 0.15, 195)},
		{name: "out of range kept", input: "2 -1 900", want: LCH(2, -1, 900)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOKLCH(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.L, got.L, 1e-12)
			assert.InDelta(t, tt.want.C, got.C, 1e-12)
			assert.InDelta(t, tt.want.H, got.H, 1e-12)
		})
	}
}

func TestParseOKLCHErrors(t *testing.T) {
	inputs := []string{
		"",
		"0.5 0.1",
		"0.5 0.1 30 1",
		"oklch(0.5 0.1 30",
		"a b c",
		"NaN 0 0",
		"0 Inf 0",
	}

	for _, input := range inputs {
		_, err := ParseOKLCH(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, ErrInvalidOKLCH), "input %q: %v", input, err)
	}
}

func TestOKLCHString(t *testing.T) {
	assert.Equal(t, "oklch(0.75 0.15 195)", LCH(0.75, 0.15, 195).String())

	parsed, err := ParseOKLCH(LCH(0.18, 0.04, 250).String())
	require.NoError(t, err)
	assert.Equal(t, LCH(0.18, 0.04, 250), parsed)
}

func TestRGBEncodings(t *testing.T) {
	white := LCH(1, 0, 0).RGB()
	r, g, b, a := white.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, "#ffffff", white.Hex())

	primary := LCH(0.75, 0.15, 195).RGB()
	r8, g8, b8 := primary.Uint8()
	assert.Equal(t, uint8(0x00), r8)
	assert.Equal(t, uint8(0xca), g8)
	assert.Equal(t, uint8(0xcb), b8)
	assert.Equal(t, "rgb(0.0000, 0.7926, 0.7967)", primary.String())

	assert.Equal(t, "#000000", RGB{}.Hex())
}
