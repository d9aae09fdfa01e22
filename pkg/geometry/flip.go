package geometry

import "lumentrace/pkg/core"

// Flip inverts the face tag of whatever it wraps, without touching
// the normal or position — used to turn an outward-facing rectangle
// into an inward-facing box wall.
type Flip struct {
	Shape core.Shape
}

// NewFlip wraps a Shape with face inversion.
func NewFlip(shape core.Shape) *Flip {
	return &Flip{Shape: shape}
}

func (f *Flip) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	hit, ok := f.Shape.RayIntersect(ray, interval)
	if !ok {
		return core.Hit{}, false
	}
	if hit.Face == core.Front {
		hit.Face = core.Back
	} else {
		hit.Face = core.Front
	}
	return hit, true
}

func (f *Flip) BoundingBox() (core.AABB, bool) {
	return f.Shape.BoundingBox()
}
