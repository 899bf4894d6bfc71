package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY turns a wrapped object about the world Y axis
type RotateY struct {
	Object  Hittable
	Degrees float64
	toWorld mgl64.Mat3
	toLocal mgl64.Mat3
	bbox    core.AABB
}

// NewRotateY wraps object so it appears rotated by degrees about +Y
func NewRotateY(object Hittable, degrees float64) *RotateY {
	radians := mgl64.DegToRad(degrees)
	r := &RotateY{
		Object:  object,
		Degrees: degrees,
		toWorld: mgl64.Rotate3DY(radians),
		toLocal: mgl64.Rotate3DY(-radians),
	}

	// Rotation does not keep the box axis aligned: rebuild it from the corners
	box := object.BoundingBox()
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, box.X),
					pick(j, box.Y),
					pick(k, box.Z),
				)
				rotated := r.rotate(r.toWorld, corner)
				lo = lo.Min(rotated)
				hi = hi.Max(rotated)
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(lo, hi)

	return r
}

func pick(i int, interval core.Interval) float64 {
	if i == 0 {
		return interval.Min
	}
	return interval.Max
}

func (r *RotateY) rotate(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

// Hit rotates the ray into object space, intersects, and rotates the hit
// point and normal back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	local := core.NewRayWithTime(
		r.rotate(r.toLocal, ray.Origin),
		r.rotate(r.toLocal, ray.Direction),
		ray.Time,
	)

	hit, ok := r.Object.Hit(local, rayT, sampler)
	if !ok {
		return nil, false
	}

	// FrontFace carries over: rotation preserves the sign of direction·normal
	hit.Point = r.rotate(r.toWorld, hit.Point)
	hit.Normal = r.rotate(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated corners of the wrapped box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// PDFValue delegates with origin and direction rotated into object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return r.Object.PDFValue(r.rotate(r.toLocal, origin), r.rotate(r.toLocal, direction))
}

// Random samples in object space and rotates the direction back to world space
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.rotate(r.toWorld, r.Object.Random(r.rotate(r.toLocal, origin), sampler))
}
