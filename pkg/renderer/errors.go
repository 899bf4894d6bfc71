package renderer

import "errors"

var (
	// ErrInterrupted is returned when a render is cancelled before every tile finished
	ErrInterrupted = errors.New("renderer: render interrupted")

	// ErrInvalidConfig is returned for camera or render settings that cannot produce an image
	ErrInvalidConfig = errors.New("renderer: invalid configuration")
)
