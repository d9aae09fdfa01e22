package meshio

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"lumentrace/pkg/core"
)

// ReadGLTF opens a .gltf or .glb file and flattens every mesh
// primitive's triangles into world space, applying each node's
// translation-rotation-scale transform (and its ancestors') to the
// primitive's raw positions. Only the POSITION accessor and the
// node hierarchy are consulted; materials and textures are out of
// scope here and are assigned by the caller's scene description
// instead. A file that fails to open or parse yields an empty,
// non-nil slice, matching ReadOBJ's I/O contract.
func ReadGLTF(path string) []core.Vec3 {
	doc, err := gltf.Open(path)
	if err != nil {
		return []core.Vec3{}
	}

	var walk func(nodeIdx uint32, parent trs)
	var triangles []core.Vec3

	walk = func(nodeIdx uint32, parent trs) {
		if int(nodeIdx) >= len(doc.Nodes) {
			return
		}
		node := doc.Nodes[nodeIdx]
		local := nodeTRS(node)
		combined := parent.compose(local)

		if node.Mesh != nil && int(*node.Mesh) < len(doc.Meshes) {
			mesh := doc.Meshes[*node.Mesh]
			for _, prim := range mesh.Primitives {
				triangles = append(triangles, primitiveTriangles(doc, prim, combined)...)
			}
		}
		for _, child := range node.Children {
			walk(child, combined)
		}
	}

	roots := sceneRoots(doc)
	for _, idx := range roots {
		walk(idx, identityTRS())
	}

	if triangles == nil {
		return []core.Vec3{}
	}
	return triangles
}

func sceneRoots(doc *gltf.Document) []uint32 {
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	roots := make([]uint32, len(doc.Nodes))
	for i := range doc.Nodes {
		roots[i] = uint32(i)
	}
	return roots
}

// trs is a translation-rotation-scale transform, applied to a point
// as scale, then rotation, then translation.
type trs struct {
	translate core.Vec3
	rotate    [4]float64 // x,y,z,w quaternion
	scale     core.Vec3
}

func identityTRS() trs {
	return trs{scale: core.NewVec3(1, 1, 1), rotate: [4]float64{0, 0, 0, 1}}
}

func nodeTRS(n *gltf.Node) trs {
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	return trs{
		translate: core.NewVec3(float64(t[0]), float64(t[1]), float64(t[2])),
		rotate:    [4]float64{float64(r[0]), float64(r[1]), float64(r[2]), float64(r[3])},
		scale:     core.NewVec3(float64(s[0]), float64(s[1]), float64(s[2])),
	}
}

// compose applies child on top of parent: parent(child(point)).
func (parent trs) compose(child trs) trs {
	return trs{
		translate: parent.apply(child.translate),
		rotate:    quatMul(parent.rotate, child.rotate),
		scale:     core.NewVec3(parent.scale.X*child.scale.X, parent.scale.Y*child.scale.Y, parent.scale.Z*child.scale.Z),
	}
}

func (t trs) apply(p core.Vec3) core.Vec3 {
	scaled := core.NewVec3(p.X*t.scale.X, p.Y*t.scale.Y, p.Z*t.scale.Z)
	rotated := quatRotate(t.rotate, scaled)
	return rotated.Add(t.translate)
}

func quatRotate(q [4]float64, v core.Vec3) core.Vec3 {
	qv := core.NewVec3(q[0], q[1], q[2])
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.Mul(2 * q[3])).Add(uuv.Mul(2))
}

func quatMul(a, b [4]float64) [4]float64 {
	return [4]float64{
		a[3]*b[0] + a[0]*b[3] + a[1]*b[2] - a[2]*b[1],
		a[3]*b[1] - a[0]*b[2] + a[1]*b[3] + a[2]*b[0],
		a[3]*b[2] + a[0]*b[1] - a[1]*b[0] + a[2]*b[3],
		a[3]*b[3] - a[0]*b[0] - a[1]*b[1] - a[2]*b[2],
	}
}

func primitiveTriangles(doc *gltf.Document, prim *gltf.Primitive, transform trs) []core.Vec3 {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil
	}

	verts := make([]core.Vec3, len(positions))
	for i, p := range positions {
		verts[i] = transform.apply(core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	if prim.Indices == nil {
		return verts
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return nil
	}

	triangles := make([]core.Vec3, 0, len(indices))
	for _, idx := range indices {
		if int(idx) < len(verts) {
			triangles = append(triangles, verts[idx])
		}
	}
	return triangles
}
