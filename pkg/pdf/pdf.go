// Package pdf implements the direction-sampling densities used for
// importance sampling: each density can both draw a direction and report
// how likely a given direction was to be drawn.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a probability density over directions on the unit sphere
type PDF interface {
	// Value returns the solid-angle density of direction
	Value(direction core.Vec3) float64
	// Generate draws a direction distributed according to this density
	Generate(sampler core.Sampler) core.Vec3
}

// Target is geometry that can be aimed at from a point, typically a light
type Target interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// CosinePDF is the cosine-weighted hemisphere around a surface normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine density around normal
func NewCosinePDF(normal core.Vec3) CosinePDF {
	return CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns max(0, cos θ)/π
func (p CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosine/math.Pi)
}

// Generate draws a cosine-weighted direction
func (p CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Local(core.RandomCosineDirection(sampler.Get2D()))
}

// SpherePDF is uniform over the whole sphere of directions
type SpherePDF struct{}

// Value returns 1/(4π) for every direction
func (SpherePDF) Value(core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate draws a uniform unit direction
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// HittablePDF samples directions from an origin toward a target
type HittablePDF struct {
	target Target
	origin core.Vec3
}

// NewHittablePDF creates a density aimed at target as seen from origin
func NewHittablePDF(target Target, origin core.Vec3) HittablePDF {
	return HittablePDF{target: target, origin: origin}
}

// Value returns the target's solid-angle density along direction
func (p HittablePDF) Value(direction core.Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate draws a direction toward a random point on the target
func (p HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.target.Random(p.origin, sampler)
}

// MixturePDF draws from one of two densities with equal probability
type MixturePDF struct {
	p [2]PDF
}

// NewMixturePDF mixes two densities with weight one half each
func NewMixturePDF(p0, p1 PDF) MixturePDF {
	return MixturePDF{p: [2]PDF{p0, p1}}
}

// Value returns the average of both densities
func (m MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate flips a fair coin to pick which density draws the direction
func (m MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}

// NonePDF has no density anywhere. Geometry that cannot be sampled as a
// light reports through it.
type NonePDF struct{}

// Value always returns 0
func (NonePDF) Value(core.Vec3) float64 {
	return 0
}

// Generate returns +X
func (NonePDF) Generate(core.Sampler) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
