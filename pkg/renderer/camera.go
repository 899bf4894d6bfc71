package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes the view and the sampling budget of a render
type CameraConfig struct {
	AspectRatio     float64   // Image width over height
	ImageWidth      int       // Rendered image width in pixels
	SamplesPerPixel int       // Rounded down to a square number of strata
	MaxDepth        int       // Maximum number of bounces per path
	Background      core.Vec3 // Radiance of rays that escape the scene
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3
	LookAt          core.Vec3
	VUp             core.Vec3
	DefocusAngle    float64 // Cone angle in degrees through each pixel; 0 disables depth of field
	FocusDist       float64 // Distance to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDist:       10,
	}
}

// ImageHeight returns the rendered height, at least one pixel
func (c CameraConfig) ImageHeight() int {
	return max(1, int(float64(c.ImageWidth)/c.AspectRatio))
}

// Validate reports settings that cannot produce an image
func (c CameraConfig) Validate() error {
	switch {
	case c.ImageWidth <= 0:
		return fmt.Errorf("%w: image width %d", ErrInvalidConfig, c.ImageWidth)
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio %v", ErrInvalidConfig, c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical field of view %v", ErrInvalidConfig, c.VFov)
	case c.LookFrom == c.LookAt:
		return fmt.Errorf("%w: look-from equals look-at", ErrInvalidConfig)
	case c.LookFrom.Subtract(c.LookAt).Cross(c.VUp).NearZero():
		return fmt.Errorf("%w: view-up is parallel to the view direction", ErrInvalidConfig)
	case !(c.FocusDist > 0):
		return fmt.Errorf("%w: focus distance %v", ErrInvalidConfig, c.FocusDist)
	}
	return nil
}

// Camera generates stratified, jittered primary rays with optional
// depth of field and motion-blur time
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Vec3
	pixel00      core.Vec3 // Center of pixel (0, 0), the top-left one
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	sqrtSpp      int
	recipSqrtSpp float64
}

// NewCamera validates config and precomputes the viewport
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{
		config:      config,
		imageHeight: config.ImageHeight(),
		center:      config.LookFrom,
	}
	c.sqrtSpp = max(1, int(math.Sqrt(float64(config.SamplesPerPixel))))
	c.recipSqrtSpp = 1 / float64(c.sqrtSpp)

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * config.FocusDist
	viewportWidth := viewportHeight * float64(config.ImageWidth) / float64(c.imageHeight)

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	upperLeft := c.center.
		Subtract(w.Multiply(config.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = upperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(config.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = u.Multiply(defocusRadius)
	c.defocusDiskV = v.Multiply(defocusRadius)

	return c, nil
}

// Config returns the settings the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// SqrtSpp returns the number of strata along each side of a pixel
func (c *Camera) SqrtSpp() int {
	return c.sqrtSpp
}

// SamplesPerPixel returns the number of samples actually taken per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.sqrtSpp * c.sqrtSpp
}

// GetRay returns a ray through pixel (i, j) jittered within stratum (si, sj).
// Row j=0 is the top of the image.
func (c *Camera) GetRay(i, j, si, sj int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	offsetX := (float64(si)+jitter.X)*c.recipSqrtSpp - 0.5
	offsetY := (float64(sj)+jitter.Y)*c.recipSqrtSpp - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}
