package material

import "lumentrace/pkg/core"

// Light is an emissive surface. It never scatters and emits a fixed
// color independent of the hit's UV or position.
type Light struct {
	Emission core.Color
}

// NewLight builds a Light material emitting the given color.
func NewLight(emission core.Color) *Light {
	return &Light{Emission: emission}
}

// Scatter always fails: light surfaces terminate the path.
func (l *Light) Scatter(rayIn core.Ray, hit core.Hit, sampler *core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the configured emission color unconditionally.
func (l *Light) Emitted(uv core.Vec2, p core.Vec3) core.Color {
	return l.Emission
}
