package material

import (
	"testing"

	"lumentrace/pkg/core"
)

func TestDiffuseAlwaysScatters(t *testing.T) {
	d := NewDiffuse(nil, core.NewColor(0.5, 0.5, 0.5))
	hit := core.Hit{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	sampler := core.NewSampler(3)

	for i := 0; i < 100; i++ {
		result, ok := d.Scatter(core.Ray{}, hit, sampler)
		if !ok {
			t.Fatal("diffuse scatter must always succeed")
		}
		if result.Scattered.Origin != hit.Position {
			t.Errorf("scattered ray origin = %v, want hit position %v", result.Scattered.Origin, hit.Position)
		}
	}
}

func TestDiffuseEmittedBlack(t *testing.T) {
	d := NewDiffuse(nil, core.White)
	if got := d.Emitted(core.Vec2{}, core.Vec3{}); got != core.Black {
		t.Errorf("Emitted() = %v, want Black", got)
	}
}
