package core

import "math"

// Color is a floating-point RGB triple. Channel values outside [0,1]
// are valid intermediate state (e.g. light emission); Gamma2 clamps
// them to [0,1], and Color24 conversion expects channels already in
// that range.
type Color struct {
	R, G, B float64
}

// NewColor builds a Color from its channels.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{0.93, 0.33, 0.31}
)

func (c Color) Add(o Color) Color    { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c Color) Sub(o Color) Color    { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }
func (c Color) Scale(o Color) Color  { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }
func (c Color) Mul(s float64) Color  { return Color{c.R * s, c.G * s, c.B * s} }

// LerpColor linearly interpolates between a and b, clamping t to [0,1].
func LerpColor(a, b Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{a.R + (b.R-a.R)*t, a.G + (b.G-a.G)*t, a.B + (b.B-a.B)*t}
}

// RandomColor returns a color with channels uniform in [0,1).
func RandomColor(s *Sampler) Color {
	return Color{s.Float(), s.Float(), s.Float()}
}

// RandomColorRange returns a color with channels uniform in [lo,hi).
func RandomColorRange(s *Sampler, lo, hi float64) Color {
	return Color{s.FloatRange(lo, hi), s.FloatRange(lo, hi), s.FloatRange(lo, hi)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Gamma2 applies the fixed gamma-2 tone map: clamp01(sqrt(scale*channel)).
func Gamma2(c Color, scale float64) Color {
	return Color{
		R: clamp01(math.Sqrt(scale * c.R)),
		G: clamp01(math.Sqrt(scale * c.G)),
		B: clamp01(math.Sqrt(scale * c.B)),
	}
}

// Color24 is a lossy 8-bit-per-channel color, used for bitmap output.
type Color24 struct {
	R, G, B uint8
}

// To24 truncates (no rounding) each channel*255 into a byte.
func (c Color) To24() Color24 {
	return Color24{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
	}
}

// ToColor expands a Color24 back into floating point.
func (c Color24) ToColor() Color {
	return Color{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
