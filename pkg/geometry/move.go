package geometry

import "lumentrace/pkg/core"

// Move translates a Shape by a fixed Offset.
type Move struct {
	Shape  core.Shape
	Offset core.Vec3
}

// NewMove wraps a Shape with a translation.
func NewMove(shape core.Shape, offset core.Vec3) *Move {
	return &Move{Shape: shape, Offset: offset}
}

// RayIntersect transforms the ray into the wrapped shape's object
// space by subtracting Offset from its origin, delegates, then adds
// Offset back onto the resulting position. Translation does not
// change the ray's direction, so the child's face tag and normal
// (computed against the same direction vector) already satisfy
// invariant 1 for the untranslated ray; no recomputation is needed.
func (m *Move) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	moved := core.NewRay(ray.Origin.Sub(m.Offset), ray.Direction)
	hit, ok := m.Shape.RayIntersect(moved, interval)
	if !ok {
		return core.Hit{}, false
	}
	hit.Position = hit.Position.Add(m.Offset)
	return hit, true
}

func (m *Move) BoundingBox() (core.AABB, bool) {
	box, ok := m.Shape.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(m.Offset), box.Max.Add(m.Offset)), true
}
