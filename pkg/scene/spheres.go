package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// newBouncingSpheres scatters small random spheres around three large ones.
// Diffuse spheres bounce during the shutter interval.
func newBouncingSpheres(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)
	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	reserved := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(reserved).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				bounce := core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0)
				objects = append(objects, geometry.NewMovingSphere(center, center.Add(bounce), 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, lambertian(0.4, 0.2, 0.1)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	world, err := newWorld(objects...)
	if err != nil {
		return nil, err
	}

	camera := skyCamera()
	camera.DefocusAngle = 0.6
	return &Scene{World: world, Camera: camera}, nil
}

func newCheckeredSpheres(opts Options) (*Scene, error) {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	world, err := newWorld(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	if err != nil {
		return nil, err
	}
	return &Scene{World: world, Camera: skyCamera()}, nil
}

func newEarth(opts Options) (*Scene, error) {
	if opts.TexturePath == "" {
		return nil, ErrMissingTexture
	}
	texture, err := loaders.LoadImage(opts.TexturePath)
	if err != nil {
		return nil, err
	}

	world, err := newWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))
	if err != nil {
		return nil, err
	}

	camera := skyCamera()
	camera.LookFrom = core.NewVec3(0, 0, 12)
	return &Scene{World: world, Camera: camera}, nil
}

func newPerlinSpheres(opts Options) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewSeededSampler(opts.Seed)))

	world, err := newWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	if err != nil {
		return nil, err
	}
	return &Scene{World: world, Camera: skyCamera()}, nil
}
