package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate displaces a wrapped object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	local := core.NewRayWithTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(local, rayT, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the wrapped box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// PDFValue delegates with origin moved into object space
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Object.PDFValue(origin.Subtract(t.Offset), direction)
}

// Random delegates with origin moved into object space. Directions are
// unchanged by translation.
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Object.Random(origin.Subtract(t.Offset), sampler)
}
