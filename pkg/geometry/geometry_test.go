package geometry

import "lumentrace/pkg/core"

// dummyMaterial never scatters or emits; it exists only so shapes
// under test have something to point at.
type dummyMaterial struct{}

func (dummyMaterial) Scatter(core.Ray, core.Hit, *core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (dummyMaterial) Emitted(core.Vec2, core.Vec3) core.Color {
	return core.Black
}
