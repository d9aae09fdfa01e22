// Package perlin implements the 256-point permuted gradient noise used
// by the noise and marble procedural shaders.
package perlin

import (
	"math"

	"lumentrace/pkg/core"
)

const pointCount = 256

// Noise is a self-contained gradient-noise lattice: three permutations
// of [0,255] and 256 unit random gradients.
type Noise struct {
	values             [pointCount]core.Vec3
	permX, permY, permZ [pointCount]int
}

// New builds a Noise lattice using the given sampler for both the
// Fisher-Yates permutations and the random unit gradients.
func New(s *core.Sampler) *Noise {
	n := &Noise{}
	for i := range n.values {
		n.values[i] = core.NewVec3(s.FloatRange(-1, 1), s.FloatRange(-1, 1), s.FloatRange(-1, 1)).Normalized()
	}
	permute(s, &n.permX)
	permute(s, &n.permY)
	permute(s, &n.permZ)
	return n
}

func permute(s *core.Sampler, p *[pointCount]int) {
	for i := range p {
		p[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := s.IntRange(0, i)
		p[i], p[target] = p[target], p[i]
	}
}

func hermite(t float64) float64 {
	return t * t * (3 - 2*t)
}

// At samples the noise field at p.
func (n *Noise) At(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				x := n.permX[(i+di)&255]
				y := n.permY[(j+dj)&255]
				z := n.permZ[(k+dk)&255]
				c[di][dj][dk] = n.values[x^y^z]
			}
		}
	}
	return trilinearInterp(c, u, v, w)
}

func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu, vv, ww := hermite(u), hermite(v), hermite(w)
	acc := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				acc += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return acc
}

// Turb sums noise at octave-doubled frequencies with halving weight,
// the fractal turbulence variant used by the marble shader.
func (n *Noise) Turb(p core.Vec3, depth int) float64 {
	acc := 0.0
	weight := 1.0
	tmp := p
	for i := 0; i < depth; i++ {
		acc += weight * n.At(tmp)
		weight *= 0.5
		tmp = tmp.Mul(2)
	}
	return math.Abs(acc)
}
