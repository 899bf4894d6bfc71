package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Group is a flat list of objects searched linearly
type Group struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewGroup creates a group holding objects
func NewGroup(objects ...Hittable) *Group {
	g := &Group{bbox: core.EmptyAABB}
	for _, object := range objects {
		g.Add(object)
	}
	return g
}

// Add appends object and grows the group's box
func (g *Group) Add(object Hittable) {
	g.Objects = append(g.Objects, object)
	g.bbox = g.bbox.Merge(object.BoundingBox())
}

// Len returns the number of objects in the group
func (g *Group) Len() int {
	return len(g.Objects)
}

// Hit returns the nearest hit among all objects
func (g *Group) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range g.Objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the merge of all member boxes
func (g *Group) BoundingBox() core.AABB {
	return g.bbox
}

// PDFValue averages the members' densities, matching Random's uniform choice
func (g *Group) PDFValue(origin, direction core.Vec3) float64 {
	if len(g.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(g.Objects))
	sum := 0.0
	for _, object := range g.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// Random picks a member uniformly and samples toward it
func (g *Group) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(g.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	i := int(sampler.Get1D() * float64(len(g.Objects)))
	i = min(i, len(g.Objects)-1)
	return g.Objects[i].Random(origin, sampler)
}
