package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// cornellBoxSize is the edge length of the standard Cornell box
const cornellBoxSize = 555.0

var cornellWhite = lambertian(0.73, 0.73, 0.73)

// cornellWalls returns the five walls of the box, open towards -z
func cornellWalls() ([]geometry.Hittable, error) {
	red := lambertian(0.65, 0.05, 0.05)
	green := lambertian(0.12, 0.45, 0.15)
	s := cornellBoxSize

	specs := []struct {
		corner, u, v core.Vec3
		mat          material.Material
	}{
		{core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), green},          // right
		{core.NewVec3(0, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), red},            // left
		{core.NewVec3(0, 0, 0), core.NewVec3(s, 0, 0), core.NewVec3(0, 0, s), cornellWhite},   // floor
		{core.NewVec3(s, s, s), core.NewVec3(-s, 0, 0), core.NewVec3(0, 0, -s), cornellWhite}, // ceiling
		{core.NewVec3(0, 0, s), core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), cornellWhite},   // back
	}

	walls := make([]geometry.Hittable, 0, len(specs))
	for _, w := range specs {
		quad, err := geometry.NewQuad(w.corner, w.u, w.v, w.mat)
		if err != nil {
			return nil, err
		}
		walls = append(walls, quad)
	}
	return walls, nil
}

// placedBox builds an axis-aligned box from the origin to size, turns it
// about y and moves it into place
func placedBox(size core.Vec3, degrees float64, offset core.Vec3, mat material.Material) (geometry.Hittable, error) {
	box, err := geometry.NewBox(core.Vec3{}, size, mat)
	if err != nil {
		return nil, err
	}
	return geometry.NewTranslate(geometry.NewRotateY(box, degrees), offset), nil
}

// newCornell samples both the ceiling light and the glass sphere directly
func newCornell(opts Options) (*Scene, error) {
	objects, err := cornellWalls()
	if err != nil {
		return nil, err
	}

	light, err := geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105),
		material.NewDiffuseLight(core.NewVec3(15, 15, 15)))
	if err != nil {
		return nil, err
	}

	aluminum := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	tall, err := placedBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), aluminum)
	if err != nil {
		return nil, err
	}
	glass := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))

	world, err := newWorld(append(objects, light, tall, glass)...)
	if err != nil {
		return nil, err
	}

	lights := geometry.NewGroup(light, geometry.NewSphere(core.NewVec3(190, 90, 190), 90, nil))
	camera := darkCamera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0))
	return &Scene{World: world, Lights: lights, Camera: camera}, nil
}

// newCornellSmoke replaces the solid boxes with dark and light smoke
func newCornellSmoke(opts Options) (*Scene, error) {
	objects, err := cornellWalls()
	if err != nil {
		return nil, err
	}

	light, err := geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305),
		material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	if err != nil {
		return nil, err
	}

	tall, err := placedBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), cornellWhite)
	if err != nil {
		return nil, err
	}
	short, err := placedBox(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65), cornellWhite)
	if err != nil {
		return nil, err
	}

	objects = append(objects, light,
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)
	world, err := newWorld(objects...)
	if err != nil {
		return nil, err
	}

	camera := darkCamera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0))
	return &Scene{World: world, Lights: light, Camera: camera}, nil
}
