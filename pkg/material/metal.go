package material

import "lumentrace/pkg/core"

// Metal is a glossy reflector: the incoming ray reflects about the
// hit normal, perturbed by Roughness toward a random hemisphere
// direction.
type Metal struct {
	Albedo    core.Color
	Roughness float64
}

// NewMetal builds a Metal material.
func NewMetal(albedo core.Color, roughness float64) *Metal {
	return &Metal{Albedo: albedo, Roughness: roughness}
}

// Scatter reflects rayIn about hit.Normal and perturbs by roughness.
// The ray is absorbed (ok=false) if the result points into the
// surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.Hit, sampler *core.Sampler) (core.ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalized(), hit.Normal)
	fuzz := sampler.RandomInHemisphere(hit.Normal).Mul(m.Roughness)
	scattered := core.NewRay(hit.Position, reflected.Add(fuzz))

	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}
	return core.ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, true
}

// Emitted is always black for a metal material.
func (m *Metal) Emitted(uv core.Vec2, p core.Vec3) core.Color {
	return core.Black
}
