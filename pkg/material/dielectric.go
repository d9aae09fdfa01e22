package material

import (
	"math"

	"lumentrace/pkg/core"
)

// Dielectric is a non-metallic transparent material whose
// reflection/refraction split follows Snell's law with the Schlick
// approximation of Fresnel reflectance.
type Dielectric struct {
	Albedo core.Color
	RI     float64 // index of refraction
}

// NewDielectric builds a Dielectric with a white albedo.
func NewDielectric(ri float64) *Dielectric {
	return &Dielectric{Albedo: core.White, RI: ri}
}

// schlick is the polynomial Fresnel approximation: r0 + (1-r0)(1-cosθ)^5.
func schlick(cosTheta, ri float64) float64 {
	r0 := (1 - ri) / (1 + ri)
	r0 = r0 * r0
	m := 1 - cosTheta
	return r0 + (1-r0)*m*m*m*m*m
}

// Scatter always succeeds with attenuation = Albedo; it chooses
// between reflection and refraction by total-internal-reflection and
// the Schlick probability.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.Hit, sampler *core.Sampler) (core.ScatterResult, bool) {
	eta := d.RI
	if hit.Face == core.Front {
		eta = 1.0 / d.RI
	}

	direction := rayIn.Direction.Normalized()
	cosTheta := math.Min(direction.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	var outDir core.Vec3
	if eta*sinTheta > 1.0 || sampler.Float() < schlick(cosTheta, d.RI) {
		outDir = core.Reflect(direction, hit.Normal)
	} else {
		outDir = core.Refract(direction, hit.Normal, eta)
	}

	return core.ScatterResult{
		Attenuation: d.Albedo,
		Scattered:   core.NewRay(hit.Position, outDir),
	}, true
}

// Emitted is always black for a dielectric material.
func (d *Dielectric) Emitted(uv core.Vec2, p core.Vec3) core.Color {
	return core.Black
}
