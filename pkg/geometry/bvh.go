package geometry

import (
	"log"
	"sort"

	"lumentrace/pkg/core"
)

// bvhNode is one node of the tree. left and right are themselves
// core.Shape: a leaf's children are the primitives directly (a span-1
// node aliases the same primitive into both slots), while an internal
// node's children are further bvhNodes.
type bvhNode struct {
	box         core.AABB
	left, right core.Shape
}

// BVH is a bounding volume hierarchy over a static set of shapes,
// built once and queried many times by the integrator.
type BVH struct {
	root *bvhNode
}

// NewBVH builds a BVH over shapes. At each level a split axis is
// drawn uniformly at random from sampler, the span is sorted by that
// axis's min bound, and split at the median; a span of 1 aliases the
// same shape into both children, a span of 2 orders the pair by the
// same comparator used for sorting. A shape without a bounding box is
// logged and the build continues with its zero-valued box, matching
// the degenerate-geometry contract of the rest of the package.
func NewBVH(shapes []core.Shape, sampler *core.Sampler) *BVH {
	if len(shapes) == 0 {
		return &BVH{root: nil}
	}
	cp := make([]core.Shape, len(shapes))
	copy(cp, shapes)
	return &BVH{root: buildBVH(cp, sampler)}
}

func buildBVH(shapes []core.Shape, sampler *core.Sampler) *bvhNode {
	axis := sampler.IntRange(0, 2)

	var left, right core.Shape
	switch len(shapes) {
	case 1:
		left, right = shapes[0], shapes[0]
	case 2:
		if boxLess(shapes[0], shapes[1], axis) {
			left, right = shapes[0], shapes[1]
		} else {
			left, right = shapes[1], shapes[0]
		}
	default:
		mid := len(shapes) / 2
		sort.Slice(shapes, func(i, j int) bool { return boxLess(shapes[i], shapes[j], axis) })
		left = buildBVH(shapes[:mid], sampler)
		right = buildBVH(shapes[mid:], sampler)
	}

	boxLeft, okLeft := left.BoundingBox()
	boxRight, okRight := right.BoundingBox()
	if !okLeft || !okRight {
		log.Printf("geometry: BVH node without bounding box")
	}
	return &bvhNode{box: core.Enclose(boxLeft, boxRight), left: left, right: right}
}

// boxLess orders a before b by the min bound of their boxes along
// axis, logging (but not halting on) a shape without a bounding box.
func boxLess(a, b core.Shape, axis int) bool {
	boxA, okA := a.BoundingBox()
	boxB, okB := b.BoundingBox()
	if !okA || !okB {
		log.Printf("geometry: BVH primitive without bounding box")
	}
	return axisValue(boxA.Min, axis) < axisValue(boxB.Min, axis)
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// RayIntersect descends the tree, pruning subtrees whose box the ray
// misses and tightening the search interval as closer hits are found.
func (bvh *BVH) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	if bvh.root == nil {
		return core.Hit{}, false
	}
	return bvh.root.RayIntersect(ray, interval)
}

func (n *bvhNode) RayIntersect(ray core.Ray, interval core.Interval) (core.Hit, bool) {
	if !n.box.Hit(ray, interval.Min, interval.Max) {
		return core.Hit{}, false
	}

	leftHit, leftOK := n.left.RayIntersect(ray, interval)
	rangeMax := interval.Max
	if leftOK {
		rangeMax = leftHit.T
	}
	rightHit, rightOK := n.right.RayIntersect(ray, core.NewInterval(interval.Min, rangeMax))
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

func (n *bvhNode) BoundingBox() (core.AABB, bool) {
	return n.box, true
}

// BoundingBox returns the root node's box.
func (bvh *BVH) BoundingBox() (core.AABB, bool) {
	if bvh.root == nil {
		return core.AABB{}, false
	}
	return bvh.root.box, true
}
