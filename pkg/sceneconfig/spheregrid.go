package sceneconfig

import (
	"fmt"

	"lumentrace/pkg/core"
)

// excludedCenter and excludedRadius keep the grid clear of the large
// bronze sphere at (4, 1, 0): no small sphere is placed within
// excludedRadius of (4, 0.2, 0).
var excludedCenter = core.NewVec3(4, 0.2, 0)

const excludedRadius = 0.9

// SphereGrid builds a 22x22 (a and b each over -11..10) field of
// small randomly-materialed spheres around three large
// showcase spheres (dielectric, diffuse, metal), generating a fresh
// MaterialSpec per cell so each sphere keeps an independent random
// albedo even though the whole field resolves through one
// Description.Build call.
func SphereGrid(sampler *core.Sampler) *Description {
	d := &Description{
		Camera: CameraSpec{
			Position:  [3]float64{13, 2, 3},
			LookAt:    [3]float64{0, 0, 0},
			VFov:      20,
			Aperture:  0.1,
			FocusDist: 10,
		},
		Materials: []MaterialSpec{
			{Name: "ground", Kind: "diffuse", Shader: "checker", Albedo: [3]float64{0.03, 0.01, 0.05}},
			{Name: "glass", Kind: "dielectric", RI: 1.5},
			{Name: "red", Kind: "diffuse", Albedo: [3]float64{0.93, 0.33, 0.31}},
			{Name: "bronze", Kind: "metal", Albedo: [3]float64{0.7, 0.6, 0.5}, Roughness: 0},
		},
		Primitives: []PrimitiveSpec{
			{Kind: "sphere", Material: "ground", Center: core.NewVec3(0, -1000, 0), Radius: 1000},
			{Kind: "sphere", Material: "glass", Center: core.NewVec3(0, 1, 0), Radius: 1.0},
			{Kind: "sphere", Material: "red", Center: core.NewVec3(-4, 1, 0), Radius: 1.0},
			{Kind: "sphere", Material: "bronze", Center: core.NewVec3(4, 1, 0), Radius: 1.0},
		},
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			rmat := sampler.Float()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Float(),
				0.2,
				float64(b)+0.9*sampler.Float(),
			)
			if center.Sub(excludedCenter).Length() <= excludedRadius {
				continue
			}

			name := fmt.Sprintf("cell-%d-%d", a, b)
			var mat MaterialSpec
			switch {
			case rmat < 0.8:
				mat = MaterialSpec{
					Name: name, Kind: "diffuse",
					Albedo: scaledRandomColor(sampler),
				}
			case rmat < 0.95:
				mat = MaterialSpec{
					Name: name, Kind: "metal",
					Albedo:    [3]float64{sampler.FloatRange(0.5, 1), sampler.FloatRange(0.5, 1), sampler.FloatRange(0.5, 1)},
					Roughness: sampler.FloatRange(0, 0.5),
				}
			default:
				mat = MaterialSpec{Name: name, Kind: "dielectric", RI: 1.5}
			}

			d.Materials = append(d.Materials, mat)
			d.Primitives = append(d.Primitives, PrimitiveSpec{
				Kind: "sphere", Material: name, Center: center, Radius: 0.2,
			})
		}
	}

	return d
}

// scaledRandomColor is the product of two independent random colors,
// matching the reference generator's "random * random" diffuse albedo
// (biasing toward darker, more saturated colors than a flat random
// draw would).
func scaledRandomColor(sampler *core.Sampler) [3]float64 {
	a := core.RandomColor(sampler)
	b := core.RandomColor(sampler)
	c := a.Scale(b)
	return [3]float64{c.R, c.G, c.B}
}

// SphereGridScene builds and resolves SphereGrid against the given
// aspect ratio.
func SphereGridScene(sampler *core.Sampler, aspect float64) (*Scene, error) {
	return SphereGrid(sampler).Build(sampler, aspect)
}
