package geometry

import "lumentrace/pkg/core"

// Box is an axis-aligned box built from six rectangle faces, each
// oriented to face outward.
type Box struct {
	Min, Max core.Vec3
	Sides    *List
}

// NewBox builds a Box spanning min to max with the given material
// applied to all six faces.
func NewBox(min, max core.Vec3, material core.Material) *Box {
	sides := NewList()
	sides.Add(NewPlaneXY(min.X, max.X, min.Y, max.Y, max.Z, material))
	sides.Add(NewFlip(NewPlaneXY(min.X, max.X, min.Y, max.Y, min.Z, material)))
	sides.Add(NewPlaneXZ(min.X, max.X, min.Z, max.Z, max.Y, material))
	sides.Add(NewFlip(NewPlaneXZ(min.X, max.X, min.Z, max.Z, min.Y, material)))
	sides.Add(NewPlaneYZ(min.Y, max.Y, min.Z, max.Z, max.X, material))
	sides.Add(NewFlip(NewPlaneYZ(min.Y, max.Y, min.Z, max.Z, min.X, material)))
	return &Box{Min: min, Max: max, Sides: sides}
}

func (b *Box) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	return b.Sides.RayIntersect(ray, interval)
}

func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
