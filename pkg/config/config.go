// Package config holds the render settings shared by the CLI commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var (
	// ErrInvalidValue is returned for a setting outside its allowed range
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrIncompleteS3 is returned when an S3 bucket is set without a region
	ErrIncompleteS3 = errors.New("config: incomplete S3 settings")
)

// DefaultEnvFile is loaded when no explicit env file is given
const DefaultEnvFile = ".env"

// Config contains the settings for one render. Zero Width, SamplesPerPixel
// and MaxDepth keep the scene preset's values.
type Config struct {
	Scene           string
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int // 0 uses one worker per CPU
	TileSize        int
	Seed            int64
	Output          string // Image path; format follows the extension. Empty picks a timestamped name
	PreviewWidth    int    // Width of the downscaled copy; 0 disables it
	TexturePath     string
	S3              S3Config
}

// S3Config describes where to upload the rendered frame
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Custom endpoint for S3-compatible stores; empty uses AWS
	Prefix    string // Key prefix prepended to the file name
	AccessKey string // Empty uses the default credential chain
	SecretKey string
}

// Enabled reports whether an upload was requested
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Default returns sensible default values
func Default() Config {
	return Config{
		Scene:    "cornell",
		TileSize: 32,
		Seed:     42,
	}
}

// LoadEnv loads environment variables from .env files without overriding
// variables that are already set. With no paths a missing DefaultEnvFile is
// ignored; explicitly named files must exist.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(DefaultEnvFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		paths = []string{DefaultEnvFile}
	}

	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("config: loading env files %v: %w", paths, err)
	}
	return nil
}

// Validate reports settings that cannot be rendered
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value int
		ok    bool
	}{
		{"width", c.Width, c.Width >= 0},
		{"samples per pixel", c.SamplesPerPixel, c.SamplesPerPixel >= 0},
		{"max depth", c.MaxDepth, c.MaxDepth >= 0},
		{"workers", c.Workers, c.Workers >= 0},
		{"tile size", c.TileSize, c.TileSize > 0},
		{"preview width", c.PreviewWidth, c.PreviewWidth >= 0},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s %d", ErrInvalidValue, check.name, check.value)
		}
	}

	if c.Scene == "" {
		return fmt.Errorf("%w: empty scene name", ErrInvalidValue)
	}
	if c.S3.Enabled() && c.S3.Region == "" {
		return fmt.Errorf("%w: bucket %q has no region", ErrIncompleteS3, c.S3.Bucket)
	}
	if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
		return fmt.Errorf("%w: access key and secret key must be set together", ErrIncompleteS3)
	}
	return nil
}
