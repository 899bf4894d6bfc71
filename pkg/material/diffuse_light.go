package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emitter that radiates from its front face only
type DiffuseLight struct {
	Emit ColorSource
}

// NewDiffuseLight creates a light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission follows a texture
func NewTexturedDiffuseLight(emit ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (l *DiffuseLight) Scatter(core.Ray, HitRecord, core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is zero since lights never scatter
func (l *DiffuseLight) ScatteringPDF(core.Ray, HitRecord, core.Ray) float64 {
	return 0
}

// Emitted returns the texture color on the front face and black behind it
func (l *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return l.Emit.Evaluate(hit.UV, hit.Point)
}
