package color

import (
	"errors"
	"math"
)

// ErrInvalidOKLCH is returned by ParseOKLCH for malformed input.
var ErrInvalidOKLCH = errors.New("invalid oklch color")

// CompandThreshold is the linear-light breakpoint of the sRGB transfer function.
const CompandThreshold = 0.0031308

// Convert maps an OKLCH color to clamped, gamma-encoded sRGB.
//
// The conversion goes OKLCH -> OKLab -> LMS (cubed) -> linear sRGB -> sRGB.
// Nothing is validated: out-of-range input flows through the same arithmetic
// and is only hard-clipped per channel at the very end.
func Convert(c OKLCH) RGB {
	hr := c.H * math.Pi / 180
	a := c.C * math.Cos(hr)
	b := c.C * math.Sin(hr)

	l_ := c.L + 0.3963377774*a + 0.2158037573*b
	m_ := c.L - 0.1055613458*a - 0.0638541728*b
	s_ := c.L - 0.0894841775*a - 1.2914855480*b

	l3 := l_ * l_ * l_
	m3 := m_ * m_ * m_
	s3 := s_ * s_ * s_

	rLinear := 4.0767416621*l3 - 3.3077115913*m3 + 0.2309699292*s3
	gLinear := -1.2684380046*l3 + 2.6097574011*m3 - 0.3413193965*s3
	bLinear := -0.0041960863*l3 - 0.7034186147*m3 + 1.7076147010*s3

	return RGB{
		R: Clamp01(Compand(rLinear)),
		G: Clamp01(Compand(gLinear)),
		B: Clamp01(Compand(bLinear)),
	}
}

// ConvertLCH is Convert for callers holding bare components.
func ConvertLCH(l, c, h float64) (r, g, b float64) {
	rgb := Convert(OKLCH{L: l, C: c, H: h})
	return rgb.R, rgb.G, rgb.B
}

// Compand applies the sRGB transfer function to a linear-light value.
func Compand(v float64) float64 {
	if v <= CompandThreshold {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// Clamp01 restricts v to [0, 1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	default:
		return 0
	}
}
