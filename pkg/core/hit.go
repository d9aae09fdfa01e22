package core

// Face tags which side of a surface a ray struck.
type Face int

const (
	Front Face = iota
	Back
)

// Vec2 is a 2-component UV coordinate pair.
type Vec2 struct {
	U, V float64
}

// Hit is produced at each ray/primitive intersection.
type Hit struct {
	Position Vec3
	Normal   Vec3 // unit normal facing the ray: the outward normal, negated on a Back hit
	UV       Vec2
	T        float64
	Face     Face
	Material Material // non-owning reference
}

// SetFaceNormal assigns Normal and Face from an outward-facing normal:
// if dot(ray.Direction, outwardNormal) >= 0 the normal is inverted and
// tagged Back, otherwise it is kept and tagged Front.
func (h *Hit) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	if ray.Direction.Dot(outwardNormal) >= 0 {
		h.Normal = outwardNormal.Neg()
		h.Face = Back
	} else {
		h.Normal = outwardNormal
		h.Face = Front
	}
}

// SurfaceInteraction is the input to a procedural shader: the point's
// UV, world-space position, and the owning material's base albedo.
type SurfaceInteraction struct {
	UV       Vec2
	Position Vec3
	Albedo   Color
}

// Shader is a pure function from a surface interaction to a color.
type Shader func(in SurfaceInteraction) Color

// ScatterResult is what a Material returns from a successful Scatter.
type ScatterResult struct {
	Attenuation Color
	Scattered   Ray
}

// Material is the scatter/emit contract shared by every material
// variant (Diffuse, Metal, Dielectric, Light).
type Material interface {
	// Scatter returns an attenuation and outbound ray, or ok=false if
	// the material absorbs the ray (e.g. a grazing metal reflection,
	// or any Light).
	Scatter(rayIn Ray, hit Hit, sampler *Sampler) (result ScatterResult, ok bool)

	// Emitted returns the material's emission at a hit point; the
	// default (non-emissive) materials return Black.
	Emitted(uv Vec2, p Vec3) Color
}

// Shape is the intersection contract shared by every primitive
// variant (Sphere, the three axis-aligned planes, Box, List, Flip,
// Move, RotateY, BVH).
type Shape interface {
	// RayIntersect tests ray against the primitive over the given
	// Interval, returning the nearest hit within it.
	RayIntersect(ray Ray, interval Interval) (Hit, bool)

	// BoundingBox returns the primitive's AABB. ok is false for a
	// primitive with no finite bound, such as an empty List or BVH.
	BoundingBox() (box AABB, ok bool)
}

// Logger is the renderer's progress-reporting seam.
type Logger interface {
	Printf(format string, args ...interface{})
}
