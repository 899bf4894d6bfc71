// Package scene builds the named preset worlds the renderer can draw.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	// ErrUnknownScene is returned by New for a name with no registered preset
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrMissingTexture is returned when a preset needs an image texture and none was given
	ErrMissingTexture = errors.New("scene: texture path required")
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  geometry.Hittable     // Root of the intersection hierarchy, usually a BVH
	Lights geometry.Hittable     // Objects sampled for direct lighting; nil for none
	Camera renderer.CameraConfig // Default view and sampling budget
}

// Options carries the inputs a preset may need beyond its own constants
type Options struct {
	TexturePath string // Image for textured presets
	Seed        int64  // Seed for randomly placed objects and noise tables
}

// Preset describes a registered scene
type Preset struct {
	Name        string
	Description string
	build       func(opts Options) (*Scene, error)
}

var presets = map[string]Preset{}

func register(name, description string, build func(opts Options) (*Scene, error)) {
	presets[name] = Preset{Name: name, Description: description, build: build}
}

func init() {
	register("bouncing-spheres", "Random spheres with motion blur and depth of field", newBouncingSpheres)
	register("checkered-spheres", "Two spheres with a 3D checker texture", newCheckeredSpheres)
	register("earth", "An image-textured globe (needs a texture path)", newEarth)
	register("perlin-spheres", "Marble Perlin noise on a ground and a sphere", newPerlinSpheres)
	register("quads", "Five colored parallelograms", newQuads)
	register("simple-light", "Perlin spheres lit by a quad and a sphere light", newSimpleLight)
	register("cornell", "Cornell box with a rotated metal box and a glass sphere", newCornell)
	register("cornell-smoke", "Cornell box with two boxes of smoke", newCornellSmoke)
	register("final", "Everything: boxes, motion, glass, media, textures and instancing", newFinal)
}

// Presets returns every registered scene sorted by name
func Presets() []Preset {
	list := make([]Preset, 0, len(presets))
	for _, p := range presets {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for _, p := range Presets() {
		names = append(names, p.Name)
	}
	return names
}

// New builds the named preset
func New(name string, opts Options) (*Scene, error) {
	preset, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := preset.build(opts)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	s.Name = name
	logger.Infof("Built scene %s", name)
	return s, nil
}

// newWorld wraps the objects in a BVH
func newWorld(objects ...geometry.Hittable) (geometry.Hittable, error) {
	bvh, err := geometry.NewBVH(objects)
	if err != nil {
		return nil, err
	}
	return bvh, nil
}

// skyCamera returns the outdoor camera shared by the sphere presets
func skyCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 16.0 / 9.0
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.Background = core.NewVec3(0.7, 0.8, 1.0)
	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0
	config.FocusDist = 10
	return config
}

// darkCamera returns a square camera with a black background
func darkCamera(lookFrom, lookAt core.Vec3) renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 1.0
	config.ImageWidth = 600
	config.SamplesPerPixel = 200
	config.MaxDepth = 50
	config.Background = core.Vec3{}
	config.VFov = 40
	config.LookFrom = lookFrom
	config.LookAt = lookAt
	config.VUp = core.NewVec3(0, 1, 0)
	config.FocusDist = 10
	return config
}

func lambertian(r, g, b float64) material.Material {
	return material.NewLambertian(core.NewVec3(r, g, b))
}
