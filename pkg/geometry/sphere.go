// Package geometry implements the primitive and scene-graph variants:
// Sphere, the three axis-aligned planes, Box, List, Flip, Move,
// RotateY, and BVH.
package geometry

import (
	"math"

	"lumentrace/pkg/core"
)

// Sphere is a ray-intersectable sphere with a uniform material.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere builds a Sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// RayIntersect solves the reduced quadratic a*t^2 + 2*halfB*t + c = 0
// (halfB = oc.d, c = oc.oc - r^2), preferring
// the nearer root inside the open interval and falling back to the
// farther root.
func (s *Sphere) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !interval.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !interval.Contains(root) {
			return core.Hit{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(s.Center).Mul(1 / s.Radius)

	phi := math.Atan2(outwardNormal.Z, outwardNormal.X)
	theta := math.Asin(outwardNormal.Y)
	u := 1 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi

	hit := core.Hit{
		T:        root,
		Position: point,
		UV:       core.Vec2{U: u, V: v},
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the AABB formed by Center ± Radius.
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r)), true
}
