package camera

import (
	"math"
	"testing"

	"lumentrace/pkg/core"
)

func TestCameraCenterRayPointsAtLookAt(t *testing.T) {
	pos := core.NewVec3(0, 0, 5)
	lookAt := core.NewVec3(0, 0, 0)
	vup := core.NewVec3(0, 1, 0)
	cam := New(pos, lookAt, vup, 90, 1, 0, 5)

	sampler := core.NewSampler(1)
	ray := cam.Ray(0.5, 0.5, sampler)

	dir := ray.Direction.Normalized()
	want := lookAt.Sub(pos).Normalized()
	if dir.Sub(want).Length() > 1e-6 {
		t.Errorf("center ray direction %v, want %v", dir, want)
	}
}

func TestCameraZeroApertureHasNoJitter(t *testing.T) {
	pos := core.NewVec3(1, 2, 3)
	lookAt := core.NewVec3(0, 0, 0)
	vup := core.NewVec3(0, 1, 0)
	cam := New(pos, lookAt, vup, 40, 16.0/9.0, 0, 10)

	sampler := core.NewSampler(7)
	for i := 0; i < 20; i++ {
		ray := cam.Ray(0.3, 0.7, sampler)
		if !ray.Origin.Equal(pos) {
			t.Errorf("iteration %d: origin %v, want camera position %v with zero aperture", i, ray.Origin, pos)
		}
	}
}

func TestCameraNonZeroApertureJittersOrigin(t *testing.T) {
	pos := core.NewVec3(0, 0, 0)
	lookAt := core.NewVec3(0, 0, -1)
	vup := core.NewVec3(0, 1, 0)
	cam := New(pos, lookAt, vup, 40, 1, 2.0, 10)

	sampler := core.NewSampler(3)
	sawJitter := false
	for i := 0; i < 50; i++ {
		ray := cam.Ray(0.5, 0.5, sampler)
		if ray.Origin.Sub(pos).Length() > 1e-9 {
			sawJitter = true
			break
		}
	}
	if !sawJitter {
		t.Errorf("expected at least one jittered origin with a non-zero aperture")
	}
}

func TestCameraAspectWidensViewportHorizontally(t *testing.T) {
	pos := core.NewVec3(0, 0, 5)
	lookAt := core.NewVec3(0, 0, 0)
	vup := core.NewVec3(0, 1, 0)
	narrow := New(pos, lookAt, vup, 60, 1.0, 0, 5)
	wide := New(pos, lookAt, vup, 60, 3.0, 0, 5)

	sampler := core.NewSampler(9)
	rayNarrow := narrow.Ray(1.0, 0.5, sampler)
	rayWide := wide.Ray(1.0, 0.5, sampler)

	angleNarrow := math.Abs(rayNarrow.Direction.Normalized().X)
	angleWide := math.Abs(rayWide.Direction.Normalized().X)
	if angleWide <= angleNarrow {
		t.Errorf("wider aspect ratio should widen the horizontal extent of the viewport")
	}
}
