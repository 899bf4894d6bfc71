// Package loaders reads external assets into renderer data structures.
package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// LoadImage loads a PNG, JPEG, GIF, BMP or TIFF image and converts it to an
// image texture. EXIF orientation is applied before conversion.
func LoadImage(filename string) (*material.ImageTexture, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", filename, err)
	}
	return ImageToTexture(img), nil
}

// ImageToTexture converts a decoded image to a row-major texture with
// channels scaled to [0, 1]
func ImageToTexture(img image.Image) *material.ImageTexture {
	nrgba := imaging.Clone(img) // Normalizes to an 8-bit NRGBA with origin at (0,0)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	const scale = 1.0 / 255.0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := nrgba.PixOffset(x, y)
			pixels[y*width+x] = core.NewVec3(
				float64(nrgba.Pix[offset])*scale,
				float64(nrgba.Pix[offset+1])*scale,
				float64(nrgba.Pix[offset+2])*scale,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels)
}
