package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height   int
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples per pixel after stratification
	Tiles           int           // Number of tiles rendered
	Workers         int           // Number of render goroutines
	GuardedPixels   int           // Pixels with a NaN channel replaced by zero
	Duration        time.Duration // Wall-clock render time
}

// merge folds per-tile counters into the frame totals
func (s *RenderStats) merge(tile tileStats) {
	s.TotalPixels += tile.pixels
	s.TotalSamples += tile.samples
	s.GuardedPixels += tile.guarded
	s.Tiles++
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

type tileStats struct {
	pixels  int
	samples int
	guarded int
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
