package geometry

import "lumentrace/pkg/core"

// Triangle is a single flat-shaded triangle with a cached face normal
// and bounding box.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material
	normal     core.Vec3
	box        core.AABB
}

// NewTriangle builds a Triangle from three vertices, precomputing its
// geometric normal (edge1 x edge2, normalized) and bounding box.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	normal := edge1.Cross(edge2).Normalized()

	min := core.NewVec3(
		minOf3(v0.X, v1.X, v2.X),
		minOf3(v0.Y, v1.Y, v2.Y),
		minOf3(v0.Z, v1.Z, v2.Z),
	)
	max := core.NewVec3(
		maxOf3(v0.X, v1.X, v2.X),
		maxOf3(v0.Y, v1.Y, v2.Y),
		maxOf3(v0.Z, v1.Z, v2.Z),
	)

	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		Material: material,
		normal:   normal,
		box:      core.NewAABB(min, max),
	}
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// RayIntersect uses the Moller-Trumbore algorithm: barycentric
// coordinates (u, v) double as the triangle's UV since no per-vertex
// texture coordinates are tracked.
func (t *Triangle) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return core.Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Hit{}, false
	}

	dist := f * edge2.Dot(q)
	if !interval.Contains(dist) {
		return core.Hit{}, false
	}

	hit := core.Hit{
		T:        dist,
		Position: ray.At(dist),
		UV:       core.Vec2{U: u, V: v},
		Material: t.Material,
	}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

func (t *Triangle) BoundingBox() (core.AABB, bool) {
	return t.box, true
}

// NewTriangleMesh groups a flat "three vertices per triangle" slice
// (the shared output contract of the OBJ and glTF loaders) into a BVH
// of Triangle primitives sharing one material.
func NewTriangleMesh(vertices []core.Vec3, material core.Material, sampler *core.Sampler) *BVH {
	shapes := make([]core.Shape, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		shapes = append(shapes, NewTriangle(vertices[i], vertices[i+1], vertices[i+2], material))
	}
	return NewBVH(shapes, sampler)
}
