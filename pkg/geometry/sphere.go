package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the
// ray time range [0, 1]
type Sphere struct {
	Center   core.Vec3
	Velocity core.Vec3 // Center displacement per unit of ray time
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere at center1 for time 0 moving to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	s := NewSphere(center1, radius, mat)
	s.Velocity = center2.Subtract(center1)

	rvec := core.NewVec3(s.Radius, s.Radius, s.Radius)
	end := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	s.bbox = s.bbox.Merge(end)
	return s
}

// CenterAt returns the sphere center at the given ray time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Velocity.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if s.Radius <= 0 {
		return nil, false
	}

	center := s.CenterAt(ray.Time)
	oc := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root in range, else the far one
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Divide(s.Radius)
	hit := &material.HitRecord{
		T:        root,
		Point:    point,
		UV:       sphereUV(outwardNormal),
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// PDFValue returns 1/solid angle of the sphere seen from origin, or 0 when
// direction misses it or origin is inside it. Moving spheres are sampled at
// their time-zero position.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil); !ok {
		return 0
	}

	distSq := s.Center.Subtract(origin).LengthSquared()
	if distSq <= s.Radius*s.Radius {
		return 0
	}
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSq)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}

// Random samples a direction uniformly within the cone the sphere subtends at origin
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.NewONB(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, direction.LengthSquared(), sampler.Get2D()))
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u runs around the Y axis from X=-1, v from the south pole to the north
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
