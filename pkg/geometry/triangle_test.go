package geometry

import (
	"testing"

	"lumentrace/pkg/core"
)

func TestTriangleRayHitsCenter(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		dummyMaterial{},
	)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := tri.RayIntersect(ray, core.Universe())
	if !ok {
		t.Fatal("expected a hit through the triangle's interior")
	}
	if hit.T != 5 {
		t.Errorf("T = %v, want 5", hit.T)
	}
	if hit.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("normal %v does not oppose ray direction %v", hit.Normal, ray.Direction)
	}
}

func TestTriangleRayMissesOutsideEdges(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		dummyMaterial{},
	)
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1))
	if _, ok := tri.RayIntersect(ray, core.Universe()); ok {
		t.Error("expected a miss outside the triangle's edges")
	}
}

func TestTriangleRayParallelToPlaneMisses(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		dummyMaterial{},
	)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0))
	if _, ok := tri.RayIntersect(ray, core.Universe()); ok {
		t.Error("expected a miss for a ray parallel to the triangle's plane")
	}
}

func TestTriangleBoundingBoxEnclosesVertices(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-2, -1, 0),
		core.NewVec3(1, -1, 3),
		core.NewVec3(0, 4, 1),
		dummyMaterial{},
	)
	box, ok := tri.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min.X != -2 || box.Max.X != 1 {
		t.Errorf("X bounds = [%v,%v], want [-2,1]", box.Min.X, box.Max.X)
	}
	if box.Min.Y != -1 || box.Max.Y != 4 {
		t.Errorf("Y bounds = [%v,%v], want [-1,4]", box.Min.Y, box.Max.Y)
	}
	if box.Min.Z != 0 || box.Max.Z != 3 {
		t.Errorf("Z bounds = [%v,%v], want [0,3]", box.Min.Z, box.Max.Z)
	}
}

func TestNewTriangleMeshBuildsOneTrianglePerThreeVertices(t *testing.T) {
	verts := []core.Vec3{
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(-1, -1, 2), core.NewVec3(1, -1, 2), core.NewVec3(0, 1, 2),
	}
	mesh := NewTriangleMesh(verts, dummyMaterial{}, core.NewSampler(1))

	box, ok := mesh.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box over two triangles")
	}
	if box.Min.Z != 0 || box.Max.Z != 2 {
		t.Errorf("Z bounds = [%v,%v], want [0,2]", box.Min.Z, box.Max.Z)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := mesh.RayIntersect(ray, core.Universe())
	if !ok {
		t.Fatal("expected the ray to hit the nearer triangle")
	}
	if hit.Position.Z != 2 {
		t.Errorf("hit.Position.Z = %v, want 2 (nearer triangle)", hit.Position.Z)
	}
}
