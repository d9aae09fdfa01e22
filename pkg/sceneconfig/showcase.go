package sceneconfig

import "lumentrace/pkg/core"

// Showcase demonstrates the procedural shaders: a checkered ground
// sphere, a marble-shaded sphere, and two emissive lights (a sphere
// and a small rectangle) lighting the scene from the side.
func Showcase() *Description {
	return &Description{
		Camera: CameraSpec{
			Position:  [3]float64{13, 3, 4},
			LookAt:    [3]float64{0, 1, 0},
			VFov:      30,
			Aperture:  0,
			FocusDist: 10,
		},
		Materials: []MaterialSpec{
			{Name: "checker", Kind: "diffuse", Shader: "checker"},
			{Name: "marble", Kind: "diffuse", Shader: "marble"},
			{Name: "light", Kind: "light", Emission: [3]float64{4, 4, 4}},
		},
		Primitives: []PrimitiveSpec{
			{Kind: "sphere", Material: "checker", Center: core.NewVec3(0, -1000, 0), Radius: 1000},
			{Kind: "sphere", Material: "marble", Center: core.NewVec3(0, 2, 0), Radius: 2},
			{Kind: "sphere", Material: "light", Center: core.NewVec3(0, 7, 0), Radius: 2},
			{Kind: "planeyz", Material: "light", A0: 3, A1: 5, B0: 1, B1: 3, C: -2},
		},
	}
}

// ShowcaseScene builds and resolves Showcase against the given aspect
// ratio.
func ShowcaseScene(sampler *core.Sampler, aspect float64) (*Scene, error) {
	return Showcase().Build(sampler, aspect)
}
