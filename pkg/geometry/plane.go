package geometry

import "lumentrace/pkg/core"

// PlaneXY is a rectangle in the plane z=Z, spanning [X0,X1]x[Y0,Y1].
type PlaneXY struct {
	X0, X1, Y0, Y1, Z float64
	Material          core.Material
}

// NewPlaneXY builds a PlaneXY.
func NewPlaneXY(x0, x1, y0, y1, z float64, material core.Material) *PlaneXY {
	return &PlaneXY{X0: x0, X1: x1, Y0: y0, Y1: y1, Z: z, Material: material}
}

func (p *PlaneXY) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	dist := (p.Z - ray.Origin.Z) / ray.Direction.Z
	if dist < interval.Min || dist > interval.Max {
		return core.Hit{}, false
	}
	x := ray.Origin.X + dist*ray.Direction.X
	y := ray.Origin.Y + dist*ray.Direction.Y
	if x < p.X0 || x > p.X1 || y < p.Y0 || y > p.Y1 {
		return core.Hit{}, false
	}
	hit := core.Hit{
		T:        dist,
		Position: ray.At(dist),
		UV:       core.Vec2{U: (x - p.X0) / (p.X1 - p.X0), V: (y - p.Y0) / (p.Y1 - p.Y0)},
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return hit, true
}

func (p *PlaneXY) BoundingBox() (core.AABB, bool) {
	return core.PadAxis(core.NewVec3(p.X0, p.Y0, p.Z), core.NewVec3(p.X1, p.Y1, p.Z), 2), true
}

// PlaneXZ is a rectangle in the plane y=Y, spanning [X0,X1]x[Z0,Z1].
type PlaneXZ struct {
	X0, X1, Z0, Z1, Y float64
	Material          core.Material
}

// NewPlaneXZ builds a PlaneXZ.
func NewPlaneXZ(x0, x1, z0, z1, y float64, material core.Material) *PlaneXZ {
	return &PlaneXZ{X0: x0, X1: x1, Z0: z0, Z1: z1, Y: y, Material: material}
}

func (p *PlaneXZ) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	dist := (p.Y - ray.Origin.Y) / ray.Direction.Y
	if dist < interval.Min || dist > interval.Max {
		return core.Hit{}, false
	}
	x := ray.Origin.X + dist*ray.Direction.X
	z := ray.Origin.Z + dist*ray.Direction.Z
	if x < p.X0 || x > p.X1 || z < p.Z0 || z > p.Z1 {
		return core.Hit{}, false
	}
	hit := core.Hit{
		T:        dist,
		Position: ray.At(dist),
		UV:       core.Vec2{U: (x - p.X0) / (p.X1 - p.X0), V: (z - p.Z0) / (p.Z1 - p.Z0)},
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hit, true
}

func (p *PlaneXZ) BoundingBox() (core.AABB, bool) {
	return core.PadAxis(core.NewVec3(p.X0, p.Y, p.Z0), core.NewVec3(p.X1, p.Y, p.Z1), 1), true
}

// PlaneYZ is a rectangle in the plane x=X, spanning [Y0,Y1]x[Z0,Z1].
type PlaneYZ struct {
	Y0, Y1, Z0, Z1, X float64
	Material          core.Material
}

// NewPlaneYZ builds a PlaneYZ.
func NewPlaneYZ(y0, y1, z0, z1, x float64, material core.Material) *PlaneYZ {
	return &PlaneYZ{Y0: y0, Y1: y1, Z0: z0, Z1: z1, X: x, Material: material}
}

func (p *PlaneYZ) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	dist := (p.X - ray.Origin.X) / ray.Direction.X
	if dist < interval.Min || dist > interval.Max {
		return core.Hit{}, false
	}
	y := ray.Origin.Y + dist*ray.Direction.Y
	z := ray.Origin.Z + dist*ray.Direction.Z
	if y < p.Y0 || y > p.Y1 || z < p.Z0 || z > p.Z1 {
		return core.Hit{}, false
	}
	hit := core.Hit{
		T:        dist,
		Position: ray.At(dist),
		UV:       core.Vec2{U: (y - p.Y0) / (p.Y1 - p.Y0), V: (z - p.Z0) / (p.Z1 - p.Z0)},
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hit, true
}

func (p *PlaneYZ) BoundingBox() (core.AABB, bool) {
	return core.PadAxis(core.NewVec3(p.X, p.Y0, p.Z0), core.NewVec3(p.X, p.Y1, p.Z1), 0), true
}
