package core

import (
	"math"
	"math/rand"
)

// Sampler is the thread-local PRNG state threaded explicitly through
// the hot path (see spec Design Notes — "Global PRNG"). Each render
// worker owns exactly one Sampler, seeded once at job start; no
// synchronization is needed because Samplers are never shared.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler seeds a fresh Sampler.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform real in [0,1).
func (s *Sampler) Float() float64 {
	return s.rng.Float64()
}

// FloatRange returns a uniform real in [lo,hi).
func (s *Sampler) FloatRange(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float()
}

// IntRange returns a uniform integer in the closed range [lo,hi],
// by truncating FloatRange(lo, hi+1).
func (s *Sampler) IntRange(lo, hi int) int {
	return int(s.FloatRange(float64(lo), float64(hi+1)))
}

// RandomInUnitSphere rejection-samples a point inside the unit sphere.
func (s *Sampler) RandomInUnitSphere() Vec3 {
	for {
		v := Vec3{
			X: s.FloatRange(-1, 1),
			Y: s.FloatRange(-1, 1),
			Z: s.FloatRange(-1, 1),
		}
		if v.LengthSq() < 1 {
			return v
		}
	}
}

// RandomInUnitCircle rejection-samples a point inside the unit disc
// in the XY plane (Z is always 0).
func (s *Sampler) RandomInUnitCircle() Vec3 {
	for {
		v := Vec3{X: s.FloatRange(-1, 1), Y: s.FloatRange(-1, 1), Z: 0}
		if v.LengthSq() < 1 {
			return v
		}
	}
}

// RandomLambertian analytically samples a uniformly-distributed unit
// vector on the sphere, used for cosine-weighted diffuse scatter.
func (s *Sampler) RandomLambertian() Vec3 {
	a := s.FloatRange(0, 2*math.Pi)
	z := s.FloatRange(-1, 1)
	r := math.Sqrt(1 - z*z)
	return Vec3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
}

// RandomInHemisphere samples RandomInUnitSphere, flipping the result
// into the hemisphere around n when it lands on the far side.
func (s *Sampler) RandomInHemisphere(n Vec3) Vec3 {
	v := s.RandomInUnitSphere()
	if v.Dot(n) <= 0 {
		return v.Neg()
	}
	return v
}
