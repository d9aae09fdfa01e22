package shader

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/bmp"

	"lumentrace/pkg/core"
)

// ImageSource is a shader backed by a decoded raster image, supplementing
// the procedural shaders above with image-mapped albedo. It decodes
// through the standard image registry plus golang.org/x/image/bmp, so
// it can also read textures produced by pkg/bitmap.
type ImageSource struct {
	img image.Image
}

// LoadImageSource decodes path (BMP, PNG, JPEG, or GIF) into an
// ImageSource.
func LoadImageSource(path string) (*ImageSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shader: open image source: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		// Fall back to an explicit BMP decode for files that predate
		// an image/png or image/jpeg registration (or lack a magic
		// sniff match lumentrace's own bitmap headers satisfy).
		if _, serr := f.Seek(0, 0); serr == nil {
			if bmpImg, berr := bmp.Decode(f); berr == nil {
				return &ImageSource{img: bmpImg}, nil
			}
		}
		return nil, fmt.Errorf("shader: decode image source: %w", err)
	}
	return &ImageSource{img: img}, nil
}

// Shade implements core.Shader: nearest-sample the image at (u, 1-v)
// since image row 0 is the top of the picture while texture v=0 is
// the bottom, per the Texture sampling convention.
func (s *ImageSource) Shade(in core.SurfaceInteraction) core.Color {
	bounds := s.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return core.NewColor(1, 0, 1)
	}

	u := clamp01(in.UV.U)
	v := clamp01(1 - in.UV.V)

	x := bounds.Min.X + int(u*float64(w))
	y := bounds.Min.Y + int(v*float64(h))
	if x >= bounds.Max.X {
		x = bounds.Max.X - 1
	}
	if y >= bounds.Max.Y {
		y = bounds.Max.Y - 1
	}

	r, g, b, _ := s.img.At(x, y).RGBA()
	return core.NewColor(float64(r)/65535, float64(g)/65535, float64(b)/65535)
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
