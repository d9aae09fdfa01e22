// Package core provides the math kernel, PRNG, and shared hit/scatter
// records used by every other package in lumentrace.
package core

import "math"

// epsilon bounds both vector equality and the normalize-near-zero guard.
const epsilon = 1e-5

// Vec3 is a 3-component real vector, used interchangeably for points
// and directions; colors use the separate Color type in color.go.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a vector from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Index returns the i'th component (0=X, 1=Y, 2=Z).
func (v Vec3) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3   { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Scale(o Vec3) Vec3    { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) LengthSq() float64    { return v.Dot(v) }
func (v Vec3) Length() float64      { return math.Sqrt(v.LengthSq()) }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Normalized returns a unit vector in the same direction. Returns v
// unchanged when its length is at or below epsilon.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length <= epsilon {
		return v
	}
	return v.Mul(1 / length)
}

// Equal compares two vectors within epsilon using squared distance.
func (v Vec3) Equal(o Vec3) bool {
	return v.Sub(o).LengthSq() < epsilon*epsilon
}

// Lerp linearly interpolates between a and b, clamping t to [0,1].
func Lerp(a, b Vec3, t float64) Vec3 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Reflect reflects v about normal n: R = V - 2*dot(V,N)*N.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract applies Snell's law to v about normal n with the ratio of
// refractive indices etaiOverEtat (incident over transmitted).
func Refract(v, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(v.Neg().Dot(n), 1.0)
	rOutParallel := v.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutPerp := n.Mul(-math.Sqrt(math.Max(0, 1.0-rOutParallel.LengthSq())))
	return rOutParallel.Add(rOutPerp)
}
