package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic is the phase function of a homogeneous medium: it scatters
// uniformly over the sphere of directions
type Isotropic struct {
	noEmission
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with texture
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter hands back the uniform sphere density
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         pdf.SpherePDF{},
	}, true
}

// ScatteringPDF returns 1/(4π) for every direction
func (i *Isotropic) ScatteringPDF(core.Ray, HitRecord, core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
