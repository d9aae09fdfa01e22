package geometry

import "lumentrace/pkg/core"

// List is an unaccelerated collection of shapes, tested linearly.
type List struct {
	Shapes []core.Shape
}

// NewList builds an empty List.
func NewList() *List {
	return &List{}
}

// Add appends a shape to the list.
func (l *List) Add(shape core.Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// RayIntersect tests every shape in the list and keeps the closest hit,
// shrinking the search interval as nearer hits are found.
func (l *List) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	var closest core.Hit
	hitAnything := false
	closestSoFar := interval.Max

	for _, shape := range l.Shapes {
		hit, ok := shape.RayIntersect(ray, core.NewInterval(interval.Min, closestSoFar))
		if !ok {
			continue
		}
		hitAnything = true
		closestSoFar = hit.T
		closest = hit
	}
	return closest, hitAnything
}

// BoundingBox returns the union of every shape's box. An empty list,
// or a list with any shape that reports no box, reports no box.
func (l *List) BoundingBox() (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, shape := range l.Shapes {
		b, ok := shape.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = b
			first = false
			continue
		}
		box = core.Enclose(box, b)
	}
	return box, true
}
