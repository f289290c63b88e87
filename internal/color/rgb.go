package color

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a gamma-encoded sRGB color with every channel in [0, 1].
// Convert is the only constructor; values are never modified afterwards.
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// RGBA implements the image/color.Color interface. The color is opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// Uint8 returns the channels rounded to 8 bits.
func (c RGB) Uint8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}

// String formats the float channels with four decimals.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

func to8(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}

func to16(v float64) uint32 {
	return uint32(math.Round(Clamp01(v) * 0xffff))
}
