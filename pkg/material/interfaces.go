package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material decides how light leaves a surface point
type Material interface {
	// Scatter returns the scattering record for rayIn at hit, or false when
	// the material absorbs the ray
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns the density with which the material itself
	// would scatter rayIn into scattered. Materials that only scatter along
	// deterministic directions return 0.
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64

	// Emitted returns the radiance emitted toward rayIn at hit
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Attenuation core.Vec3
	PDF         pdf.PDF // Direction density for diffuse-like scattering
	SkipPDF     bool    // Outgoing direction is deterministic, see SkipPDFRay
	SkipPDFRay  core.Ray
}

// HitRecord contains information about a ray-object intersection.
// It is only valid for the ray and scene that produced it.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface texture coordinates
	FrontFace bool      // Whether the geometric outward normal faced the ray
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by materials that never emit light
type noEmission struct{}

func (noEmission) Emitted(core.Ray, HitRecord) core.Vec3 {
	return core.Vec3{}
}
