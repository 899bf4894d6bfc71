package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect. Implementations are immutable
// once built and safe to share between render workers; any randomness they
// need comes from the caller's sampler.
type Hittable interface {
	// Hit returns the nearest intersection with t inside rayT
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object for every ray time
	BoundingBox() core.AABB

	// PDFValue returns the solid-angle density, as seen from origin, of
	// sampling direction by aiming at this object
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin toward a random point on the object
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// notSampleable is embedded by objects that cannot be aimed at as lights
type notSampleable struct{}

func (notSampleable) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

func (notSampleable) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
