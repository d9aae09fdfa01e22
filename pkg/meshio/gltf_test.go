package meshio

import (
	"path/filepath"
	"testing"

	"lumentrace/pkg/core"
)

func TestReadGLTFMissingFileReturnsEmptySlice(t *testing.T) {
	tris := ReadGLTF(filepath.Join(t.TempDir(), "missing.gltf"))
	if tris == nil {
		t.Fatal("expected a non-nil empty slice, got nil")
	}
	if len(tris) != 0 {
		t.Errorf("got %d triangles, want 0", len(tris))
	}
}

func TestIdentityTRSLeavesPointsUnchanged(t *testing.T) {
	p := core.NewVec3(1, 2, 3)
	got := identityTRS().apply(p)
	if !got.Equal(p) {
		t.Errorf("identity transform gave %v, want %v", got, p)
	}
}

func TestTRSTranslateThenScale(t *testing.T) {
	transform := trs{
		translate: core.NewVec3(10, 0, 0),
		rotate:    [4]float64{0, 0, 0, 1},
		scale:     core.NewVec3(2, 2, 2),
	}
	got := transform.apply(core.NewVec3(1, 1, 1))
	want := core.NewVec3(12, 2, 2)
	if !got.Equal(want) {
		t.Errorf("apply() = %v, want %v", got, want)
	}
}

func TestTRSComposeAppliesChildThenParent(t *testing.T) {
	parent := trs{translate: core.NewVec3(5, 0, 0), rotate: [4]float64{0, 0, 0, 1}, scale: core.NewVec3(1, 1, 1)}
	child := trs{translate: core.NewVec3(0, 3, 0), rotate: [4]float64{0, 0, 0, 1}, scale: core.NewVec3(1, 1, 1)}

	combined := parent.compose(child)
	got := combined.apply(core.NewVec3(0, 0, 0))
	want := core.NewVec3(5, 3, 0)
	if !got.Equal(want) {
		t.Errorf("composed apply() = %v, want %v", got, want)
	}
}

func TestQuatRotate90DegreesAboutY(t *testing.T) {
	// 90 degree rotation about Y: (x,y,z,w) = (0, sin(45deg), 0, cos(45deg))
	half := 0.7071067811865476
	q := [4]float64{0, half, 0, half}
	got := quatRotate(q, core.NewVec3(1, 0, 0))
	want := core.NewVec3(0, 0, -1)
	if got.Sub(want).Length() > 1e-6 {
		t.Errorf("quatRotate() = %v, want %v", got, want)
	}
}
