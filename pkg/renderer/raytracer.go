package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// Options controls how a frame is split across goroutines
type Options struct {
	Workers  int   // Number of render goroutines; <= 0 uses one per CPU
	TileSize int   // Tile edge length in pixels; <= 0 uses DefaultTileSize
	Seed     int64 // Base seed; tile i samples with Seed+i
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		TileSize: DefaultTileSize,
		Seed:     42,
	}
}

// Raytracer renders a world through a camera with an integrator
type Raytracer struct {
	world      geometry.Hittable
	lights     geometry.Hittable // May be nil
	camera     *Camera
	integrator integrator.Integrator
	options    Options
}

// NewRaytracer creates a raytracer using unidirectional path tracing against
// the camera's background color. lights may be nil.
func NewRaytracer(world, lights geometry.Hittable, camera *Camera, options Options) (*Raytracer, error) {
	if camera == nil {
		return nil, fmt.Errorf("%w: no camera", ErrInvalidConfig)
	}
	integ := integrator.NewPathTracingIntegrator(camera.Config().Background)
	return NewRaytracerWithIntegrator(world, lights, camera, integ, options)
}

// NewRaytracerWithIntegrator creates a raytracer with an explicit integrator
func NewRaytracerWithIntegrator(world, lights geometry.Hittable, camera *Camera, integ integrator.Integrator, options Options) (*Raytracer, error) {
	switch {
	case world == nil:
		return nil, fmt.Errorf("%w: no world", ErrInvalidConfig)
	case camera == nil:
		return nil, fmt.Errorf("%w: no camera", ErrInvalidConfig)
	case integ == nil:
		return nil, fmt.Errorf("%w: no integrator", ErrInvalidConfig)
	}
	if options.TileSize <= 0 {
		options.TileSize = DefaultTileSize
	}

	return &Raytracer{
		world:      world,
		lights:     lights,
		camera:     camera,
		integrator: integ,
		options:    options,
	}, nil
}

// RenderPixel returns the averaged linear color of pixel (i, j) over every
// stratum of the camera's sample grid
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	var stats PixelStats
	maxDepth := rt.camera.Config().MaxDepth
	n := rt.camera.SqrtSpp()

	for sj := 0; sj < n; sj++ {
		for si := 0; si < n; si++ {
			ray := rt.camera.GetRay(i, j, si, sj, sampler)
			stats.AddSample(rt.integrator.RayColor(ray, maxDepth, rt.world, rt.lights, sampler))
		}
	}

	return stats.GetColor()
}

// RenderBounds renders the pixels inside bounds into img
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA, sampler core.Sampler) tileStats {
	var stats tileStats
	spp := rt.camera.SamplesPerPixel()

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixel, guarded := ToRGBA(rt.RenderPixel(i, j, sampler))
			img.SetRGBA(i, j, pixel)

			stats.pixels++
			stats.samples += spp
			if guarded {
				stats.guarded++
			}
		}
	}

	return stats
}

// Render renders the full frame. A cancelled ctx stops workers before their
// next tile and returns the partial image with ErrInterrupted.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	tiles := NewTileGrid(width, height, rt.options.TileSize)

	pool := NewWorkerPool(rt, len(tiles), rt.options.Workers)
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
		Workers:         pool.GetNumWorkers(),
	}

	logger.Infof("Rendering %dx%d at %d spp: %d tiles on %d workers",
		width, height, stats.SamplesPerPixel, len(tiles), stats.Workers)

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Seed: rt.options.Seed + int64(tile.ID), Image: img})
	}

	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.merge(result.Stats)
		logger.Debugf("Tile %d done (%d/%d)", result.TileID, stats.Tiles, len(tiles))
	}
	pool.Stop()

	stats.Duration = time.Since(start)

	if renderErr != nil {
		logger.Warningf("Render interrupted after %d/%d tiles", stats.Tiles, len(tiles))
		if errors.Is(renderErr, context.Canceled) || errors.Is(renderErr, context.DeadlineExceeded) {
			return img, stats, fmt.Errorf("%w: %v", ErrInterrupted, renderErr)
		}
		return img, stats, renderErr
	}

	if stats.GuardedPixels > 0 {
		logger.Warningf("%d pixels had NaN channels replaced with black", stats.GuardedPixels)
	}
	logger.Noticef("Render complete in %v (%.0f samples/s)", stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond())

	return img, stats, nil
}
