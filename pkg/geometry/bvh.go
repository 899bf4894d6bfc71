package geometry

import (
	"errors"
	"sort"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrNoObjects is returned when building a BVH over an empty object list
var ErrNoObjects = errors.New("geometry: cannot build a BVH without objects")

var logger = log.New("bvh")

// BVHNode is a node of a binary Bounding Volume Hierarchy. Children are
// either further nodes or primitives; a subtree with one object stores it
// as both children.
type BVHNode struct {
	notSampleable
	Left, Right Hittable
	bbox        core.AABB
	single      bool // Left and Right are the same object
}

// NewBVH builds a hierarchy over objects. The input slice is not modified.
func NewBVH(objects []Hittable) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrNoObjects
	}

	start := time.Now()

	// Sorting happens in place on a private copy so callers can share slices
	working := make([]Hittable, len(objects))
	copy(working, objects)
	root := buildBVH(working)

	stats := root.Stats()
	logger.Debugf("built BVH over %d objects in %v (%d nodes, depth %d)",
		len(objects), time.Since(start), stats.Nodes, stats.MaxDepth)

	return root, nil
}

// NewBVHFromGroup builds a hierarchy over the members of g
func NewBVHFromGroup(g *Group) (*BVHNode, error) {
	return NewBVH(g.Objects)
}

func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = bbox.Merge(object.BoundingBox())
	}
	axis := bbox.LongestAxis()

	node := &BVHNode{bbox: bbox}
	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
		node.single = true
	case 2:
		node.Left, node.Right = objects[0], objects[1]
		if boxMin(objects[1], axis) < boxMin(objects[0], axis) {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return boxMin(objects[i], axis) < boxMin(objects[j], axis)
		})
		mid := len(objects) / 2
		left := buildBVH(objects[:mid])
		right := buildBVH(objects[mid:])
		node.Left, node.Right = left, right
		node.bbox = left.BoundingBox().Merge(right.BoundingBox())
	}

	return node
}

func boxMin(object Hittable, axis int) float64 {
	return object.BoundingBox().Axis(axis).Min
}

// Hit prunes on the node's box, then probes left before right, narrowing
// the interval to the left hit so right can only return something closer
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)
	if n.single {
		return leftHit, hitLeft
	}

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the merge of every box in the subtree
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes        int
	Leaves       int // Primitive references, counting a duplicated leaf once
	MaxDepth     int
	AvgLeafDepth float64
}

// Stats walks the tree and collects node counts and depths
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.Leaves > 0 {
		stats.AvgLeafDepth /= float64(stats.Leaves)
	}
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left, n.Right}
	if n.single {
		children = children[:1]
	}
	for _, child := range children {
		if inner, ok := child.(*BVHNode); ok {
			inner.collectStats(depth+1, stats)
			continue
		}
		stats.Leaves++
		stats.AvgLeafDepth += float64(depth + 1)
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
