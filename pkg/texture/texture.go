// Package texture holds the renderer's output pixel grid.
package texture

import "lumentrace/pkg/core"

// magenta is returned by Sample on a null/uninitialized Texture so
// missing lookups are visually obvious rather than silently black.
var magenta = core.NewColor(1, 0, 1)

// Texture is a width x height grid of Color, stored row-major.
type Texture struct {
	width, height int
	pixels        []core.Color
}

// New allocates a black width x height texture.
func New(width, height int) *Texture {
	return &Texture{width: width, height: height, pixels: make([]core.Color, width*height)}
}

// Width and Height report the grid's dimensions.
func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// ReadPixel returns the color at integer coordinates (x, y).
func (t *Texture) ReadPixel(x, y int) core.Color {
	return t.pixels[y*t.width+x]
}

// WritePixel sets the color at integer coordinates (x, y).
func (t *Texture) WritePixel(x, y int, c core.Color) {
	t.pixels[y*t.width+x] = c
}

// Sample performs nearest sampling at normalized (u, v) in [0,1]^2. A
// nil Texture (or a Texture with no pixels) samples to magenta.
func (t *Texture) Sample(u, v float64) core.Color {
	if t == nil || t.width == 0 || t.height == 0 {
		return magenta
	}
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	x := int(u * float64(t.width))
	y := int(v * float64(t.height))
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}
	return t.ReadPixel(x, y)
}

// Paste copies src into dst with its top-left corner at (x, y).
func Paste(dst, src *Texture, x, y int) {
	for v := 0; v < src.height; v++ {
		for u := 0; u < src.width; u++ {
			dst.WritePixel(x+u, y+v, src.ReadPixel(u, v))
		}
	}
}
