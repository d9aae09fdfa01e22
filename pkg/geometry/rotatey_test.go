package geometry

import (
	"math"
	"testing"

	"lumentrace/pkg/core"
)

// TestRotateYTransformsPositionAndNormal rotates a sphere offset from
// the Y axis by 90 degrees and checks the hit is reported against the
// rotated geometry, not the original.
func TestRotateYTransformsPositionAndNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 0, 0), 0.5, dummyMaterial{})
	rotated := NewRotateY(sphere, 90)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := rotated.RayIntersect(ray, core.Universe())
	if !ok {
		t.Fatal("expected hit on the rotated sphere")
	}

	if math.Abs(hit.T-6.5) > 1e-9 {
		t.Errorf("T = %v, want 6.5", hit.T)
	}
	wantPos := core.NewVec3(0, 0, -1.5)
	if !hit.Position.Equal(wantPos) {
		t.Errorf("Position = %v, want %v", hit.Position, wantPos)
	}
	wantNormal := core.NewVec3(0, 0, 1)
	if !hit.Normal.Equal(wantNormal) {
		t.Errorf("Normal = %v, want %v", hit.Normal, wantNormal)
	}
	if hit.Face != core.Front {
		t.Errorf("Face = %v, want Front", hit.Face)
	}
}

// TestRotateYNormalAlwaysOpposesRay exercises both the entering and
// exiting hit of a rotated sphere and checks the construction
// invariant holds for both: the final normal always opposes the ray
// that produced it.
func TestRotateYNormalAlwaysOpposesRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 0, 0), 1.0, dummyMaterial{})
	rotated := NewRotateY(sphere, 37)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(10, 0, -6), core.NewVec3(-1, 0, 0.3)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0.2, 0.5)),
	}
	for i, ray := range rays {
		hit, ok := rotated.RayIntersect(ray, core.Universe())
		if !ok {
			continue
		}
		if ray.Direction.Dot(hit.Normal) >= 1e-9 {
			t.Errorf("ray %d: normal %v does not oppose ray direction %v", i, hit.Normal, ray.Direction)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("ray %d: normal %v is not unit length", i, hit.Normal)
		}
	}
}

func TestRotateYBoundingBoxEnclosesRotatedCorners(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 1), dummyMaterial{})
	rotated := NewRotateY(box, 45)

	got, ok := rotated.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if got.Max.X-got.Min.X < 2 {
		t.Errorf("rotated box X extent %v looks too small for a 45 degree rotation of a 2-wide box", got.Max.X-got.Min.X)
	}
}
