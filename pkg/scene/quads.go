package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func newQuads(opts Options) (*Scene, error) {
	specs := []struct {
		corner, u, v core.Vec3
		mat          material.Material
	}{
		{core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), lambertian(1.0, 0.2, 0.2)}, // left red
		{core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), lambertian(0.2, 1.0, 0.2)},  // back green
		{core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), lambertian(0.2, 0.2, 1.0)},   // right blue
		{core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), lambertian(1.0, 0.5, 0.0)},   // upper orange
		{core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lambertian(0.2, 0.8, 0.8)}, // lower teal
	}

	objects := make([]geometry.Hittable, 0, len(specs))
	for _, s := range specs {
		quad, err := geometry.NewQuad(s.corner, s.u, s.v, s.mat)
		if err != nil {
			return nil, err
		}
		objects = append(objects, quad)
	}

	world, err := newWorld(objects...)
	if err != nil {
		return nil, err
	}

	camera := skyCamera()
	camera.AspectRatio = 1.0
	camera.VFov = 80
	camera.LookFrom = core.NewVec3(0, 0, 9)
	return &Scene{World: world, Camera: camera}, nil
}

// newSimpleLight lights the Perlin spheres with a rectangle and a sphere
func newSimpleLight(opts Options) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewSeededSampler(opts.Seed)))
	glow := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	panel, err := geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), glow)
	if err != nil {
		return nil, err
	}
	bulb := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, glow)

	world, err := newWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		panel,
		bulb,
	)
	if err != nil {
		return nil, err
	}

	camera := skyCamera()
	camera.Background = core.Vec3{}
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	return &Scene{World: world, Lights: geometry.NewGroup(panel, bulb), Camera: camera}, nil
}
