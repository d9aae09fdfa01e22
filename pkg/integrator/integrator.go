// Package integrator implements the radiance accumulator that turns a
// primary ray into a color by bouncing it through the scene.
package integrator

import "lumentrace/pkg/core"

// Trace walks ray through scene, accumulating radiance up to maxDepth
// bounces. It is written iteratively rather than recursively: a
// running throughput beta is multiplied by each bounce's attenuation,
// and each bounce's emission is weighted by the throughput accrued so
// far before the bounce, so the result is identical to the tail-
// recursive accumulation described for trace_ray without growing the
// call stack at high depth.
func Trace(ray core.Ray, scene core.Shape, background core.Color, maxDepth int, sampler *core.Sampler) core.Color {
	radiance := core.Black
	beta := core.White
	current := ray

	for depth := maxDepth; depth > 0; depth-- {
		hit, ok := scene.RayIntersect(current, core.Universe())
		if !ok {
			radiance = radiance.Add(beta.Scale(background))
			break
		}

		emitted := hit.Material.Emitted(hit.UV, hit.Position)
		radiance = radiance.Add(beta.Scale(emitted))

		result, scattered := hit.Material.Scatter(current, hit, sampler)
		if !scattered {
			break
		}

		beta = beta.Scale(result.Attenuation)
		current = result.Scattered
	}

	return radiance
}
