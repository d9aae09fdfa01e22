package geometry

import (
	"testing"

	"lumentrace/pkg/core"
)

func TestListReturnsClosestHit(t *testing.T) {
	l := NewList()
	l.Add(NewSphere(core.NewVec3(0, 0, -5), 1, dummyMaterial{}))
	l.Add(NewSphere(core.NewVec3(0, 0, -2), 1, dummyMaterial{}))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := l.RayIntersect(ray, core.Universe())
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.T > 1.5 {
		t.Errorf("T = %v, expected the nearer sphere's hit (around 1)", hit.T)
	}
}

func TestListEmptyBoundingBox(t *testing.T) {
	l := NewList()
	if _, ok := l.BoundingBox(); ok {
		t.Errorf("an empty list must report no bounding box")
	}
}

func TestListBoundingBoxEnclosesMembers(t *testing.T) {
	l := NewList()
	l.Add(NewSphere(core.NewVec3(-5, 0, 0), 1, dummyMaterial{}))
	l.Add(NewSphere(core.NewVec3(5, 0, 0), 1, dummyMaterial{}))

	box, ok := l.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min.X > -6 || box.Max.X < 6 {
		t.Errorf("box %+v does not enclose both spheres", box)
	}
}
