package loaders

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/core"
)

// writeQuadrants saves a 2x2 image: white, red on top; green, blue below
func writeQuadrants(t *testing.T, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	path := filepath.Join(t.TempDir(), name)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("Failed to save test image: %v", err)
	}
	return path
}

func checkColor(t *testing.T, name string, got, expected core.Vec3) {
	t.Helper()
	const tolerance = 0.01
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("%s: expected %v, got %v", name, expected, got)
	}
}

func TestLoadImage(t *testing.T) {
	texture, err := LoadImage(writeQuadrants(t, "test.png"))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 || len(texture.Pixels) != 4 {
		t.Fatalf("Expected 2x2 texture, got %dx%d with %d pixels", texture.Width, texture.Height, len(texture.Pixels))
	}

	// Row-major, top row first
	checkColor(t, "Top-left (white)", texture.Pixels[0], core.NewVec3(1, 1, 1))
	checkColor(t, "Top-right (red)", texture.Pixels[1], core.NewVec3(1, 0, 0))
	checkColor(t, "Bottom-left (green)", texture.Pixels[2], core.NewVec3(0, 1, 0))
	checkColor(t, "Bottom-right (blue)", texture.Pixels[3], core.NewVec3(0, 0, 1))

	// v=1 is the top of the image
	checkColor(t, "uv (0,1)", texture.Evaluate(core.NewVec2(0, 1), core.Vec3{}), core.NewVec3(1, 1, 1))
	checkColor(t, "uv (1,0)", texture.Evaluate(core.NewVec2(1, 0), core.Vec3{}), core.NewVec3(0, 0, 1))
}

func TestLoadImage_Formats(t *testing.T) {
	for _, name := range []string{"test.bmp", "test.tif"} {
		t.Run(name, func(t *testing.T) {
			texture, err := LoadImage(writeQuadrants(t, name))
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			checkColor(t, "Top-right (red)", texture.Pixels[1], core.NewVec3(1, 0, 0))
		})
	}
}

func TestImageToTexture_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(10, 20, color.RGBA{R: 255, A: 255})

	texture := ImageToTexture(img)
	if texture.Width != 3 || texture.Height != 2 {
		t.Fatalf("Expected 3x2 texture, got %dx%d", texture.Width, texture.Height)
	}
	checkColor(t, "origin pixel", texture.Pixels[0], core.NewVec3(1, 0, 0))
}

func TestLoadImageNotFound(t *testing.T) {
	if _, err := LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
