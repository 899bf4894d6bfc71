package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a reflective material with optional fuzziness
type Metal struct {
	noEmission
	Albedo ColorSource
	Fuzz   float64 // Radius of the reflection perturbation, at most 1
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: NewSolidColor(albedo), Fuzz: max(0, min(1, fuzz))}
}

// Scatter reflects the incoming ray about the normal
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := reflectVector(rayIn.Direction, hit.Normal).Normalize()
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	// Fuzz can push the reflection below the surface
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
		SkipPDF:     true,
		SkipPDFRay:  core.NewRayWithTime(hit.Point, reflected, rayIn.Time),
	}, true
}

// ScatteringPDF is zero: the reflection is handled as a specular path
func (m *Metal) ScatteringPDF(core.Ray, HitRecord, core.Ray) float64 {
	return 0
}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
