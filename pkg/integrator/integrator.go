package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. lights may be nil
	// when the scene has nothing worth sampling directly.
	RayColor(ray core.Ray, depth int, world, lights geometry.Hittable, sampler core.Sampler) core.Vec3
}
