package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// shadowAcneEpsilon keeps a scattered ray from re-hitting the surface it left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
// with a light/material mixture density for diffuse bounces
type PathTracingIntegrator struct {
	Background core.Vec3 // Radiance for rays that escape the scene
}

// NewPathTracingIntegrator creates a path tracer with a constant background
func NewPathTracingIntegrator(background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: background}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world, lights geometry.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.Background
	}

	emitted := hit.Material.Emitted(ray, *hit)

	srec, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	if srec.SkipPDF {
		incoming := pt.RayColor(srec.SkipPDFRay, depth-1, world, lights, sampler)
		return emitted.Add(srec.Attenuation.MultiplyVec(incoming))
	}

	var density pdf.PDF = srec.PDF
	if lights != nil {
		density = pdf.NewMixturePDF(pdf.NewHittablePDF(lights, hit.Point), srec.PDF)
	}

	scattered := core.NewRayWithTime(hit.Point, density.Generate(sampler), ray.Time)
	pdfValue := density.Value(scattered.Direction)
	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)

	// A zero density would divide into Inf or NaN
	if !(pdfValue > 0) || scatteringPDF <= 0 {
		return emitted
	}

	incoming := pt.RayColor(scattered, depth-1, world, lights, sampler)
	contribution := srec.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
	if !contribution.IsFinite() {
		return emitted
	}

	return emitted.Add(contribution)
}
