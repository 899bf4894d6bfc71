package output

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// FileSink writes frames below a directory. The image format follows the
// file extension.
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink rooted at dir; an empty dir means the working directory
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Save implements Sink
func (f *FileSink) Save(ctx context.Context, name string, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(f.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("output: creating directory for %s: %w", path, err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("output: saving %s: %w", path, err)
	}

	logger.Noticef("Wrote %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
