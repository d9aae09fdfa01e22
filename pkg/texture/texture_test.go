package texture

import (
	"testing"

	"lumentrace/pkg/core"
)

func TestNilSampleMagenta(t *testing.T) {
	var tex *Texture
	got := tex.Sample(0.5, 0.5)
	if got != core.NewColor(1, 0, 1) {
		t.Errorf("nil texture sample = %v, want magenta", got)
	}
}

func TestPasteCopiesPixels(t *testing.T) {
	dst := New(4, 4)
	src := New(2, 2)
	src.WritePixel(0, 0, core.NewColor(1, 0, 0))
	src.WritePixel(1, 1, core.NewColor(0, 1, 0))

	Paste(dst, src, 1, 1)

	if got := dst.ReadPixel(1, 1); got != core.NewColor(1, 0, 0) {
		t.Errorf("dst(1,1) = %v, want red", got)
	}
	if got := dst.ReadPixel(2, 2); got != core.NewColor(0, 1, 0) {
		t.Errorf("dst(2,2) = %v, want green", got)
	}
}
