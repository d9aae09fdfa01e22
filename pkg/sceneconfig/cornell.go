package sceneconfig

import "lumentrace/pkg/core"

// Cornell builds the classic five-wall box with a ceiling light and
// two rotated, offset boxes, matching the reference renderer's default
// scene: red/green side walls, a warm ceiling light, and a tall box
// plus a short box each built axis-aligned at the origin, rotated
// about Y, then moved into place.
func Cornell() *Description {
	return &Description{
		Camera: CameraSpec{
			Position:  [3]float64{278, 278, -800},
			LookAt:    [3]float64{278, 278, 0},
			VFov:      40,
			Aperture:  0,
			FocusDist: 10,
		},
		Materials: []MaterialSpec{
			{Name: "red", Kind: "diffuse", Albedo: [3]float64{0.65, 0.05, 0.05}},
			{Name: "green", Kind: "diffuse", Albedo: [3]float64{0.12, 0.45, 0.15}},
			{Name: "white", Kind: "diffuse", Albedo: [3]float64{0.73, 0.73, 0.73}},
			{Name: "light", Kind: "light", Emission: [3]float64{38, 33.364, 29.184}},
		},
		Primitives: []PrimitiveSpec{
			// red wall at x=555, facing inward
			{Kind: "planeyz", Material: "red", A0: 0, A1: 555, B0: 0, B1: 555, C: 555, Flip: true},
			// green wall at x=0
			{Kind: "planeyz", Material: "green", A0: 0, A1: 555, B0: 0, B1: 555, C: 0},
			// ceiling light
			{Kind: "planexz", Material: "light", A0: 213, A1: 343, B0: 227, B1: 332, C: 554},
			// ceiling, facing inward
			{Kind: "planexz", Material: "white", A0: 0, A1: 555, B0: 0, B1: 555, C: 555, Flip: true},
			// floor
			{Kind: "planexz", Material: "white", A0: 0, A1: 555, B0: 0, B1: 555, C: 0},
			// back wall, facing inward
			{Kind: "planexy", Material: "white", A0: 0, A1: 555, B0: 0, B1: 555, C: 555, Flip: true},
			// tall box
			{
				Kind: "box", Material: "white",
				Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(165, 330, 165),
				HasRotateY: true, RotateYDeg: 15,
				HasMove: true, MoveBy: core.NewVec3(265, 0, 295),
			},
			// short box
			{
				Kind: "box", Material: "white",
				Min: core.NewVec3(0, 0, 0), Max: core.NewVec3(165, 165, 165),
				HasRotateY: true, RotateYDeg: -18,
				HasMove: true, MoveBy: core.NewVec3(130, 0, 65),
			},
		},
	}
}

// CornellScene builds and resolves the Cornell box against a square
// viewport, the reference renderer's aspect ratio.
func CornellScene(sampler *core.Sampler) (*Scene, error) {
	return Cornell().Build(sampler, 1.0)
}
