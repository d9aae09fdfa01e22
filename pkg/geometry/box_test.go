package geometry

import (
	"testing"

	"lumentrace/pkg/core"
)

func TestBoxHitsNearFace(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), dummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, ok := box.RayIntersect(ray, core.Universe())
	if !ok {
		t.Fatal("expected hit on the near face")
	}
	if !hit.Normal.Equal(core.NewVec3(0, 0, 1)) {
		t.Errorf("Normal = %v, want (0,0,1)", hit.Normal)
	}
	if hit.Face != core.Front {
		t.Errorf("Face = %v, want Front", hit.Face)
	}
}

func TestBoxMissesAside(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), dummyMaterial{})
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1))
	if _, ok := box.RayIntersect(ray, core.Universe()); ok {
		t.Errorf("expected miss for a ray that passes beside the box")
	}
}

func TestBoxBoundingBox(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -2, -3), core.NewVec3(4, 5, 6), dummyMaterial{})
	got, ok := box.BoundingBox()
	if !ok {
		t.Fatal("box must report a bounding box")
	}
	if !got.Min.Equal(core.NewVec3(-1, -2, -3)) || !got.Max.Equal(core.NewVec3(4, 5, 6)) {
		t.Errorf("box = %+v, want min/max to match the box's own corners", got)
	}
}
