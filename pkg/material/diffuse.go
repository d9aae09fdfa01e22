// Package material implements the scatter/emit variants: Diffuse,
// Metal, Dielectric, and Light.
package material

import "lumentrace/pkg/core"

// Diffuse is a perfectly Lambertian material. It always scatters,
// attenuating by its shader's output evaluated at the hit.
type Diffuse struct {
	Shader core.Shader
	Albedo core.Color
}

// NewDiffuse builds a Diffuse material with the given shader and base
// albedo. A nil shader defaults to a solid-color pass-through.
func NewDiffuse(shader core.Shader, albedo core.Color) *Diffuse {
	if shader == nil {
		shader = func(in core.SurfaceInteraction) core.Color { return in.Albedo }
	}
	return &Diffuse{Shader: shader, Albedo: albedo}
}

// Scatter always succeeds: the outbound direction is hit.Normal
// perturbed by an analytic Lambertian sample.
func (d *Diffuse) Scatter(rayIn core.Ray, hit core.Hit, sampler *core.Sampler) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(sampler.RandomLambertian())
	attenuation := d.Shader(core.SurfaceInteraction{UV: hit.UV, Position: hit.Position, Albedo: d.Albedo})
	return core.ScatterResult{
		Attenuation: attenuation,
		Scattered:   core.NewRay(hit.Position, direction),
	}, true
}

// Emitted is always black for a diffuse material.
func (d *Diffuse) Emitted(uv core.Vec2, p core.Vec3) core.Color {
	return core.Black
}
