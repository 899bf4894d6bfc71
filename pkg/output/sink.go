// Package output writes rendered frames to local files and object storage.
package output

import (
	"context"
	"image"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"

	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("output")

// Sink stores a finished frame under name
type Sink interface {
	Save(ctx context.Context, name string, img image.Image) error
}

// MultiSink saves to every sink in order, stopping at the first failure
type MultiSink []Sink

// Save implements Sink
func (m MultiSink) Save(ctx context.Context, name string, img image.Image) error {
	for _, sink := range m {
		if err := sink.Save(ctx, name, img); err != nil {
			return err
		}
	}
	return nil
}

// Preview returns a copy of img scaled to width pixels wide, keeping the
// aspect ratio. Images already narrower than width are returned unchanged.
func Preview(img image.Image, width uint) image.Image {
	if width == 0 || uint(img.Bounds().Dx()) <= width {
		return img
	}
	return resize.Resize(width, 0, img, resize.Lanczos3)
}

// PreviewName derives the preview file name: frame.png -> frame_preview.png
func PreviewName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_preview" + ext
}
