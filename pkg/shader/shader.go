// Package shader implements the procedural surface shaders: pure
// functions from a surface interaction to a color.
package shader

import (
	"math"

	"lumentrace/pkg/core"
	"lumentrace/pkg/perlin"
)

// Solid returns the hit's base albedo unchanged.
func Solid(in core.SurfaceInteraction) core.Color {
	return in.Albedo
}

// Checker alternates between the albedo and white based on the sign
// of a 3D sine-wave lattice sampled at 6x the hit position.
func Checker(in core.SurfaceInteraction) core.Color {
	p := in.Position.Mul(6)
	s := math.Sin(p.X) * math.Sin(p.Y) * math.Sin(p.Z)
	if s < 0 {
		return in.Albedo
	}
	return core.White
}

// XOR modulates the albedo by the XOR of the quantized UV coordinates.
func XOR(in core.SurfaceInteraction) core.Color {
	u := int(in.UV.U * 255)
	v := int(in.UV.V * 255)
	factor := float64(u^v) / 255
	return in.Albedo.Mul(factor)
}

// NewNoise builds a noise shader bound to a specific Perlin lattice.
func NewNoise(n *perlin.Noise) core.Shader {
	return func(in core.SurfaceInteraction) core.Color {
		return core.White.Mul(0.5 * (1 + n.At(in.Position.Mul(4))))
	}
}

// NewMarble builds a marble shader bound to a specific Perlin lattice.
func NewMarble(n *perlin.Noise) core.Shader {
	return func(in core.SurfaceInteraction) core.Color {
		v := math.Sin(4*in.Position.Z + 10*n.Turb(in.Position, 7))
		return core.White.Mul(0.5 * (1 + v))
	}
}
