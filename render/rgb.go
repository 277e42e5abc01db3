package render

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color, alpha is passed separately to compositing calls
type RGB struct {
	R, G, B uint8
}

// Predefined default colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// ParseColor decodes a "#rrggbb" or "#rgb" hex string
func ParseColor(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// MustParseColor is ParseColor for compile-time constants, panics on malformed input
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a clamped colorful.Color
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Colorful converts to a colorful.Color for perceptual blending
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the "#rrggbb" form
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv + 0.5),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv + 0.5),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv + 0.5),
	}
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs additive blend with clamping and alpha blending
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	added := RGB{
		R: add(c.R, src.R),
		G: add(c.G, src.G),
		B: add(c.B, src.B),
	}

	if alpha >= 1.0 {
		return added
	}

	return Blend(c, added, alpha)
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// LerpLab interpolates in CIE L*a*b* space, used for glow stops so hue does not muddy
func LerpLab(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return FromColorful(a.Colorful().BlendLab(b.Colorful(), t))
}
