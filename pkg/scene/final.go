package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// newFinal combines every primitive, material and texture in one frame.
// Without a texture path the globe falls back to a checker.
func newFinal(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	// Ground: 20x20 boxes of random height
	ground := lambertian(0.48, 0.83, 0.53)
	const boxesPerSide = 20
	boxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)

			box, err := geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground)
			if err != nil {
				return nil, err
			}
			boxes = append(boxes, box)
		}
	}
	groundBVH, err := geometry.NewBVH(boxes)
	if err != nil {
		return nil, err
	}

	light, err := geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265),
		material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	if err != nil {
		return nil, err
	}

	center := core.NewVec3(400, 400, 200)
	objects := []geometry.Hittable{
		groundBVH,
		light,
		geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 50, lambertian(0.7, 0.3, 0.1)),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	}

	// Blue subsurface: a glass shell filled with dense colored fog
	shell := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects, shell, geometry.NewConstantMedium(shell, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	var globe material.ColorSource = material.NewCheckerColors(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	if opts.TexturePath != "" {
		texture, err := loaders.LoadImage(opts.TexturePath)
		if err != nil {
			return nil, err
		}
		globe = texture
	}
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(0.2, sampler))),
	)

	// Cluster of small spheres, instanced through rotate and translate
	white := lambertian(0.73, 0.73, 0.73)
	cluster := make([]geometry.Hittable, 0, 1000)
	for i := 0; i < 1000; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	clusterBVH, err := geometry.NewBVH(cluster)
	if err != nil {
		return nil, err
	}
	objects = append(objects, geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	world, err := newWorld(objects...)
	if err != nil {
		return nil, err
	}

	camera := darkCamera(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0))
	camera.ImageWidth = 800
	camera.SamplesPerPixel = 250
	camera.MaxDepth = 40
	return &Scene{World: world, Lights: light, Camera: camera}, nil
}
