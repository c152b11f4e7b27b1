package cpuraster

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Interpolate blends three colors with barycentric weights, channel by
// channel. Results are rounded to the nearest integer and clamped to
// [0, 255]; the alpha channel of the result is always opaque.
func Interpolate(w Weights, c1, c2, c3 color.NRGBA) color.NRGBA {
	mix := func(a, b, c uint8) uint8 {
		return clamp255(w.Alpha*float32(a) + w.Beta*float32(b) + w.Gamma*float32(c))
	}
	return color.NRGBA{
		R: mix(c1.R, c2.R, c3.R),
		G: mix(c1.G, c2.G, c3.G),
		B: mix(c1.B, c2.B, c3.B),
		A: 255,
	}
}

// clamp255 rounds x to the nearest integer in [0, 255].
func clamp255(x float32) uint8 {
	if math32.IsNaN(x) {
		return 0
	}
	return uint8(math32.Max(0, math32.Min(255, math32.Round(x))))
}

// clamp01 limits x to [0, 1]. NaN maps to 0.
func clamp01(x float32) float32 {
	if math32.IsNaN(x) {
		return 0
	}
	return math32.Max(0, math32.Min(1, x))
}
