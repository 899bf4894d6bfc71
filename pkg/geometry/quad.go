package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrDegenerateQuad is returned for quads whose edges are zero or collinear
var ErrDegenerateQuad = errors.New("geometry: quad edges are collinear or zero")

// quadParallelEpsilon rejects rays nearly parallel to the quad's plane
const quadParallelEpsilon = 1e-8

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal (U × V normalized)
	D        float64   // Plane equation constant: Normal · p = D
	W        core.Vec3 // n / (n·n), maps plane points to edge coordinates
	Area     float64
	Material material.Material
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) (*Quad, error) {
	n := u.Cross(v)
	nn := n.LengthSquared()
	if nn < 1e-16 {
		return nil, ErrDegenerateQuad
	}

	normal := n.Normalize()
	q := &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		D:        normal.Dot(corner),
		W:        n.Divide(nn),
		Area:     n.Length(),
		Material: mat,
	}

	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))
	q.bbox = diagonal1.Merge(diagonal2)

	return q, nil
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < quadParallelEpsilon {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the box spanned by the quad's four corners
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue converts the uniform area density to solid angle as seen from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.00001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())
	if cosine <= 0 {
		return 0
	}
	return distanceSquared / (cosine * q.Area)
}

// Random returns the direction from origin to a uniform point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	p := q.Corner.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y))
	return p.Subtract(origin)
}
