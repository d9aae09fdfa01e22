package geometry

import (
	"math"

	"lumentrace/pkg/core"
)

// RotateY rotates a Shape by Angle degrees around the Y axis.
type RotateY struct {
	Shape             core.Shape
	sinTheta, cosTheta float64
	aabb              core.AABB
	hasBox            bool
}

// NewRotateY builds a RotateY wrapper, precomputing sin/cos of the
// angle (in degrees) and the rotated bounding box as the union of the
// eight rotated corners of the child's AABB.
func NewRotateY(shape core.Shape, angleDegrees float64) *RotateY {
	rad := angleDegrees * math.Pi / 180
	r := &RotateY{Shape: shape, sinTheta: math.Sin(rad), cosTheta: math.Cos(rad)}

	box, ok := shape.BoundingBox()
	r.hasBox = ok
	if !ok {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, box.Min.X, box.Max.X)
				y := lerpCorner(j, box.Min.Y, box.Max.Y)
				z := lerpCorner(k, box.Min.Z, box.Max.Z)

				rotX := r.cosTheta*x + r.sinTheta*z
				rotZ := -r.sinTheta*x + r.cosTheta*z
				t := core.NewVec3(rotX, y, rotZ)

				min = core.NewVec3(math.Min(min.X, t.X), math.Min(min.Y, t.Y), math.Min(min.Z, t.Z))
				max = core.NewVec3(math.Max(max.X, t.X), math.Max(max.Y, t.Y), math.Max(max.Z, t.Z))
			}
		}
	}
	r.aabb = core.NewAABB(min, max)
	return r
}

func lerpCorner(i int, lo, hi float64) float64 {
	if i == 1 {
		return hi
	}
	return lo
}

// RayIntersect rotates the ray into object space by -Angle, delegates,
// then rotates the hit position and the recovered outward normal back
// by +Angle before re-deriving the face tag against the original ray.
//
// The child's returned normal already points against the rotated ray
// (per the Hit construction rule), so it is first un-flipped back to
// the true outward normal before the world-space face tag is derived
// — re-applying SetFaceNormal directly to an already-oriented normal
// would collapse every hit to Front.
func (r *RotateY) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	origin := core.NewVec3(
		r.cosTheta*ray.Origin.X-r.sinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.sinTheta*ray.Origin.X+r.cosTheta*ray.Origin.Z,
	)
	direction := core.NewVec3(
		r.cosTheta*ray.Direction.X-r.sinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.sinTheta*ray.Direction.X+r.cosTheta*ray.Direction.Z,
	)
	rotated := core.NewRay(origin, direction)

	hit, ok := r.Shape.RayIntersect(rotated, interval)
	if !ok {
		return core.Hit{}, false
	}

	outwardObj := hit.Normal
	if hit.Face == core.Back {
		outwardObj = outwardObj.Neg()
	}

	hit.Position = core.NewVec3(
		r.cosTheta*hit.Position.X+r.sinTheta*hit.Position.Z,
		hit.Position.Y,
		-r.sinTheta*hit.Position.X+r.cosTheta*hit.Position.Z,
	)
	outwardWorld := core.NewVec3(
		r.cosTheta*outwardObj.X+r.sinTheta*outwardObj.Z,
		outwardObj.Y,
		-r.sinTheta*outwardObj.X+r.cosTheta*outwardObj.Z,
	)
	hit.SetFaceNormal(ray, outwardWorld)
	return hit, true
}

func (r *RotateY) BoundingBox() (core.AABB, bool) {
	return r.aabb, r.hasBox
}
