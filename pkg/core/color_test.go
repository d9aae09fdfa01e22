package core

import "testing"

func TestGamma2Black(t *testing.T) {
	for _, scale := range []float64{0, 0.5, 1, 100} {
		got := Gamma2(Black, scale)
		if got != Black {
			t.Errorf("Gamma2(Black, %v) = %v, want Black", scale, got)
		}
	}
}

func TestColor24RoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		c24 := Color24{R: uint8(r), G: uint8(r), B: uint8(r)}
		back := c24.ToColor().To24()
		if back != c24 {
			t.Errorf("round trip %v -> %v -> %v", c24, c24.ToColor(), back)
		}
	}
}
