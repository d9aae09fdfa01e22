// Package sceneconfig builds the scenes the renderer consumes, either
// from hardcoded Go scene functions (cornell.go, showcase.go,
// spheregrid.go) or from a declarative YAML description (yaml.go).
// Both paths converge on Description.Build.
package sceneconfig

import (
	"fmt"

	"lumentrace/pkg/camera"
	"lumentrace/pkg/core"
	"lumentrace/pkg/geometry"
	"lumentrace/pkg/material"
	"lumentrace/pkg/meshio"
	"lumentrace/pkg/perlin"
	"lumentrace/pkg/shader"
)

// Scene bundles everything the renderer needs to run: the accelerated
// world, the camera, and the background color returned on a miss.
type Scene struct {
	World      core.Shape
	Camera     *camera.Camera
	Background core.Color
}

// CameraSpec is the declarative form of camera.New's parameters.
type CameraSpec struct {
	Position  [3]float64 `yaml:"position"`
	LookAt    [3]float64 `yaml:"look_at"`
	VFov      float64    `yaml:"vfov"`
	Aperture  float64    `yaml:"aperture"`
	FocusDist float64    `yaml:"focus_dist"`
}

func (c CameraSpec) vec3(f [3]float64) core.Vec3 {
	return core.NewVec3(f[0], f[1], f[2])
}

// MaterialSpec is the declarative form of one of the four material
// variants, named so PrimitiveSpec can reference it.
type MaterialSpec struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind"`   // "diffuse", "metal", "dielectric", "light"
	Shader    string     `yaml:"shader"` // "solid" (default), "checker", "marble", "noise"
	Albedo    [3]float64 `yaml:"albedo"`
	Roughness float64    `yaml:"roughness"` // metal
	RI        float64    `yaml:"ri"`        // dielectric
	Emission  [3]float64 `yaml:"emission"`
}

func (m MaterialSpec) albedo() core.Color {
	return core.NewColor(m.Albedo[0], m.Albedo[1], m.Albedo[2])
}

func (m MaterialSpec) emission() core.Color {
	return core.NewColor(m.Emission[0], m.Emission[1], m.Emission[2])
}

// build resolves a MaterialSpec into a core.Material, sharing noise
// across every "marble"/"noise" shader in one Description so their
// patterns stay spatially consistent.
func (m MaterialSpec) build(noise *perlin.Noise) (core.Material, error) {
	var sh core.Shader
	switch m.Shader {
	case "", "solid":
		sh = shader.Solid
	case "checker":
		sh = shader.Checker
	case "marble":
		sh = shader.NewMarble(noise)
	case "noise":
		sh = shader.NewNoise(noise)
	default:
		return nil, fmt.Errorf("sceneconfig: unknown shader %q", m.Shader)
	}

	switch m.Kind {
	case "diffuse":
		return material.NewDiffuse(sh, m.albedo()), nil
	case "metal":
		return material.NewMetal(m.albedo(), m.Roughness), nil
	case "dielectric":
		return material.NewDielectric(m.RI), nil
	case "light":
		return material.NewLight(m.emission()), nil
	default:
		return nil, fmt.Errorf("sceneconfig: unknown material kind %q", m.Kind)
	}
}

// PrimitiveSpec is the declarative form of one shape. Only the fields
// relevant to Kind are consulted; RotateYDeg, MoveBy, and Flip wrap
// the base shape in that order, matching the cornell box's box
// construction.
type PrimitiveSpec struct {
	Kind     string `yaml:"kind"` // "sphere", "planexy", "planexz", "planeyz", "box", "mesh"
	Material string `yaml:"material"`

	Center core.Vec3 `yaml:"center"`
	Radius float64   `yaml:"radius"`

	Min core.Vec3 `yaml:"min"` // box
	Max core.Vec3 `yaml:"max"` // box

	// Axis-aligned rectangle bounds: for planexy, (A0,A1,B0,B1,C) is
	// (x0,x1,y0,y1,z); for planexz, (x0,x1,z0,z1,y); for planeyz,
	// (y0,y1,z0,z1,x).
	A0 float64 `yaml:"a0"`
	A1 float64 `yaml:"a1"`
	B0 float64 `yaml:"b0"`
	B1 float64 `yaml:"b1"`
	C  float64 `yaml:"c"`

	MeshFile string `yaml:"mesh_file"` // mesh: path to an OBJ or glTF file
	MeshKind string `yaml:"mesh_kind"` // mesh: "obj" or "gltf"

	RotateYDeg float64   `yaml:"rotate_y_deg"`
	HasRotateY bool      `yaml:"rotate_y"`
	MoveBy     core.Vec3 `yaml:"move_by"`
	HasMove    bool      `yaml:"move"`
	Flip       bool      `yaml:"flip"`
}

func (p PrimitiveSpec) build(mat core.Material, sampler *core.Sampler) (core.Shape, error) {
	var s core.Shape
	switch p.Kind {
	case "sphere":
		s = geometry.NewSphere(p.Center, p.Radius, mat)
	case "planexy":
		s = geometry.NewPlaneXY(p.A0, p.A1, p.B0, p.B1, p.C, mat)
	case "planexz":
		s = geometry.NewPlaneXZ(p.A0, p.A1, p.B0, p.B1, p.C, mat)
	case "planeyz":
		s = geometry.NewPlaneYZ(p.A0, p.A1, p.B0, p.B1, p.C, mat)
	case "box":
		s = geometry.NewBox(p.Min, p.Max, mat)
	case "mesh":
		var verts []core.Vec3
		switch p.MeshKind {
		case "gltf":
			verts = meshio.ReadGLTF(p.MeshFile)
		default:
			verts = meshio.ReadOBJ(p.MeshFile)
		}
		s = geometry.NewTriangleMesh(verts, mat, sampler)
	default:
		return nil, fmt.Errorf("sceneconfig: unknown primitive kind %q", p.Kind)
	}

	if p.HasRotateY {
		s = geometry.NewRotateY(s, p.RotateYDeg)
	}
	if p.HasMove {
		s = geometry.NewMove(s, p.MoveBy)
	}
	if p.Flip {
		s = geometry.NewFlip(s)
	}
	return s, nil
}

// Description is the full declarative scene: camera, background,
// named materials, and the primitives that reference them.
type Description struct {
	Camera     CameraSpec      `yaml:"camera"`
	Background [3]float64      `yaml:"background"`
	Materials  []MaterialSpec  `yaml:"materials"`
	Primitives []PrimitiveSpec `yaml:"primitives"`
}

// Build resolves a Description into a Scene. aspect is the output
// image's width/height ratio, supplied by the caller since a
// Description does not know the target resolution. sampler seeds the
// Perlin lattice shared by every "marble"/"noise" shader.
func (d *Description) Build(sampler *core.Sampler, aspect float64) (*Scene, error) {
	noise := perlin.New(sampler)

	materials := make(map[string]core.Material, len(d.Materials))
	for _, spec := range d.Materials {
		m, err := spec.build(noise)
		if err != nil {
			return nil, err
		}
		materials[spec.Name] = m
	}

	shapes := make([]core.Shape, 0, len(d.Primitives))
	for _, spec := range d.Primitives {
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("sceneconfig: primitive references unknown material %q", spec.Material)
		}
		s, err := spec.build(mat, sampler)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}

	world := geometry.NewBVH(shapes, sampler)
	cam := camera.New(
		d.Camera.vec3(d.Camera.Position),
		d.Camera.vec3(d.Camera.LookAt),
		core.NewVec3(0, 1, 0),
		d.Camera.VFov, aspect, d.Camera.Aperture, d.Camera.FocusDist,
	)
	background := core.NewColor(d.Background[0], d.Background[1], d.Background[2])

	return &Scene{World: world, Camera: cam, Background: background}, nil
}
