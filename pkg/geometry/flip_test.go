package geometry

import (
	"testing"

	"lumentrace/pkg/core"
)

func TestFlipInvertsFaceOnly(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, dummyMaterial{})
	flipped := NewFlip(sphere)

	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	plain, ok := sphere.RayIntersect(ray, core.Universe())
	if !ok {
		t.Fatal("expected hit")
	}
	got, ok := flipped.RayIntersect(ray, core.Universe())
	if !ok {
		t.Fatal("expected hit")
	}

	if got.Face == plain.Face {
		t.Errorf("Flip must invert the face tag")
	}
	if !got.Normal.Equal(plain.Normal) {
		t.Errorf("Flip must not alter the normal, got %v want %v", got.Normal, plain.Normal)
	}
	if got.Position != plain.Position {
		t.Errorf("Flip must not alter the position")
	}
}

func TestFlipMissPassesThrough(t *testing.T) {
	flipped := NewFlip(NewSphere(core.NewVec3(0, 0, 0), 1, dummyMaterial{}))
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(0, 1, 0))
	if _, ok := flipped.RayIntersect(ray, core.Universe()); ok {
		t.Errorf("expected miss to propagate unchanged")
	}
}
