package core

import "math"

// planeThickness pads an axis-aligned plane's degenerate axis so the
// slab test never divides a zero-thickness interval.
const planeThickness = 1e-4

// AABB is an axis-aligned bounding box described by two opposite
// corners.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from its min and max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// PadAxis returns an AABB padded by ±planeThickness along the given
// axis (0=X, 1=Y, 2=Z), for use by infinitely-thin primitives.
func PadAxis(min, max Vec3, axis int) AABB {
	switch axis {
	case 0:
		min.X -= planeThickness
		max.X += planeThickness
	case 1:
		min.Y -= planeThickness
		max.Y += planeThickness
	default:
		min.Z -= planeThickness
		max.Z += planeThickness
	}
	return AABB{Min: min, Max: max}
}

// Enclose returns the AABB that bounds both a and b (componentwise
// min/max).
func Enclose(a, b AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)},
		Max: Vec3{math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Hit runs the slab test against ray over [tMin, tMax], tightening the
// running interval on each axis and rejecting once tMax <= tMin. When
// the axis's inverse direction is negative the slab's t-pair is
// swapped so t0 <= t1 going in.
func (box AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Index(axis)
		t0 := (box.Min.Index(axis) - ray.Origin.Index(axis)) * invD
		t1 := (box.Max.Index(axis) - ray.Origin.Index(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Center returns the AABB's midpoint.
func (box AABB) Center() Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}
