package cmd

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectFlags select a preset and optionally a pixel to probe
var InspectFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "x",
		Value: -1,
		Usage: "column of a pixel to probe; negative disables probing",
	},
	cli.IntFlag{
		Name:  "y",
		Value: -1,
		Usage: "row of a pixel to probe, 0 at the top",
	},
}, SceneFlags...)

// InspectScene builds a preset and displays its BVH statistics. With --x and
// --y it also traces the center of that pixel and describes the first hit.
func InspectScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	name := ctx.String("scene")
	start := time.Now()
	sc, err := scene.New(name, scene.Options{TexturePath: ctx.String("texture"), Seed: ctx.Int64("seed")})
	if err != nil {
		return err
	}
	buildTime := time.Since(start)

	bvh, ok := sc.World.(*geometry.BVHNode)
	if !ok {
		return fmt.Errorf("scene %s: world is a %T, not a BVH", name, sc.World)
	}
	displayBVHStats(name, bvh, buildTime)

	x, y := ctx.Int("x"), ctx.Int("y")
	if x < 0 || y < 0 {
		return nil
	}
	return probePixel(sc, x, y)
}

func displayBVHStats(name string, bvh *geometry.BVHNode, buildTime time.Duration) {
	stats := bvh.Stats()
	box := bvh.BoundingBox()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"Scene", name},
		{"Nodes", fmt.Sprintf("%d", stats.Nodes)},
		{"Leaves", fmt.Sprintf("%d", stats.Leaves)},
		{"Max depth", fmt.Sprintf("%d", stats.MaxDepth)},
		{"Avg leaf depth", fmt.Sprintf("%.2f", stats.AvgLeafDepth)},
		{"Bounds min", formatVec(box.Min())},
		{"Bounds max", formatVec(box.Max())},
		{"Build time", buildTime.Round(time.Microsecond).String()},
	})

	table.Render()
	logger.Noticef("scene information:\n%s", buf.String())
}

// centerSampler always returns the middle of the unit square
type centerSampler struct{}

func (centerSampler) Get1D() float64 { return 0.5 }
func (centerSampler) Get2D() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}

// probePixel traces one ray through the center of pixel (x, y)
func probePixel(sc *scene.Scene, x, y int) error {
	config := sc.Camera
	config.SamplesPerPixel = 1
	config.DefocusAngle = 0
	camera, err := renderer.NewCamera(config)
	if err != nil {
		return err
	}
	if x >= camera.ImageWidth() || y >= camera.ImageHeight() {
		return fmt.Errorf("%w: pixel (%d, %d) outside %dx%d frame",
			renderer.ErrInvalidConfig, x, y, camera.ImageWidth(), camera.ImageHeight())
	}

	ray := camera.GetRay(x, y, 0, 0, centerSampler{})
	hit, ok := sc.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)), core.NewSeededSampler(0))
	if !ok {
		logger.Noticef("pixel (%d, %d): no hit, background %s", x, y, formatVec(config.Background))
		return nil
	}

	materialType, properties := describeMaterial(hit.Material, *hit)
	rows := [][]string{
		{"Distance", fmt.Sprintf("%.4f", hit.T)},
		{"Point", formatVec(hit.Point)},
		{"Normal", formatVec(hit.Normal)},
		{"Front face", fmt.Sprintf("%t", hit.FrontFace)},
		{"UV", fmt.Sprintf("(%.3f, %.3f)", hit.UV.X, hit.UV.Y)},
		{"Material", materialType},
	}
	rows = append(rows, properties...)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk(rows)
	table.Render()
	logger.Noticef("pixel (%d, %d):\n%s", x, y, buf.String())
	return nil
}

// describeMaterial names a material and lists its parameters at the hit
func describeMaterial(mat material.Material, hit material.HitRecord) (string, [][]string) {
	switch m := mat.(type) {
	case *material.Lambertian:
		return "lambertian", [][]string{{"Albedo", formatVec(m.Albedo.Evaluate(hit.UV, hit.Point))}}
	case *material.Metal:
		return "metal", [][]string{
			{"Albedo", formatVec(m.Albedo.Evaluate(hit.UV, hit.Point))},
			{"Fuzz", fmt.Sprintf("%.3f", m.Fuzz)},
		}
	case *material.Dielectric:
		return "dielectric", [][]string{{"Refractive index", fmt.Sprintf("%.3f", m.RefractiveIndex)}}
	case *material.DiffuseLight:
		return "diffuse light", [][]string{{"Emission", formatVec(m.Emit.Evaluate(hit.UV, hit.Point))}}
	case *material.Isotropic:
		return "isotropic", [][]string{{"Albedo", formatVec(m.Albedo.Evaluate(hit.UV, hit.Point))}}
	case nil:
		return "none", nil
	default:
		return fmt.Sprintf("%T", mat), nil
	}
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
