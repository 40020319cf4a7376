package value

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a three channel sRGB color with components in [0, 1].
//
// Colors blend componentwise on the gamma-encoded sRGB components, with the
// same law as Scalar. No conversion to linear light or a perceptual space
// takes place.
type Color colorful.Color

// RGB constructs a Color from components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor reads a "#rrggbb" or "#rgb" hex string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color(c), nil
}

// Blend implements Blender.
func (c Color) Blend(other Color, t float64) Color {
	return Color(colorful.Color(other).BlendRgb(colorful.Color(c), t))
}

// Hex formats c as "#rrggbb", clamping out-of-gamut components.
func (c Color) Hex() string {
	return colorful.Color(c).Clamped().Hex()
}

func (c Color) String() string {
	return c.Hex()
}
