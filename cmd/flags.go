package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/config"
)

// SceneFlags select and seed a preset
var SceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "scene, s",
		Value:  config.Default().Scene,
		Usage:  "preset scene to render (see the scenes command)",
		EnvVar: "PT_SCENE",
	},
	cli.Int64Flag{
		Name:   "seed",
		Value:  config.Default().Seed,
		Usage:  "seed for random scene content and sampling",
		EnvVar: "PT_SEED",
	},
	cli.StringFlag{
		Name:   "texture",
		Usage:  "image file for textured presets",
		EnvVar: "PT_TEXTURE",
	},
}

// RenderFlags control the frame, the worker pool and where the result goes
var RenderFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:   "width",
		Usage:  "frame width; 0 keeps the scene default",
		EnvVar: "PT_WIDTH",
	},
	cli.IntFlag{
		Name:   "spp",
		Usage:  "samples per pixel, rounded down to a square; 0 keeps the scene default",
		EnvVar: "PT_SPP",
	},
	cli.IntFlag{
		Name:   "max-depth",
		Usage:  "maximum bounces per path; 0 keeps the scene default",
		EnvVar: "PT_MAX_DEPTH",
	},
	cli.IntFlag{
		Name:   "workers",
		Usage:  "number of render goroutines; 0 uses one per CPU",
		EnvVar: "PT_WORKERS",
	},
	cli.IntFlag{
		Name:   "tile-size",
		Value:  config.Default().TileSize,
		Usage:  "edge length of a render tile in pixels",
		EnvVar: "PT_TILE_SIZE",
	},
	cli.StringFlag{
		Name:   "out, o",
		Usage:  "image filename for the rendered frame (default output/<scene>/render_<timestamp>.png)",
		EnvVar: "PT_OUT",
	},
	cli.IntFlag{
		Name:   "preview-width",
		Usage:  "also write a downscaled copy this many pixels wide; 0 disables it",
		EnvVar: "PT_PREVIEW_WIDTH",
	},
	cli.StringFlag{
		Name:   "s3-bucket",
		Usage:  "upload the frame to this S3 bucket",
		EnvVar: "PT_S3_BUCKET",
	},
	cli.StringFlag{
		Name:   "s3-region",
		Usage:  "region of the S3 bucket",
		EnvVar: "PT_S3_REGION",
	},
	cli.StringFlag{
		Name:   "s3-endpoint",
		Usage:  "custom endpoint for S3-compatible storage",
		EnvVar: "PT_S3_ENDPOINT",
	},
	cli.StringFlag{
		Name:   "s3-prefix",
		Usage:  "key prefix for uploaded frames",
		EnvVar: "PT_S3_PREFIX",
	},
	cli.StringFlag{
		Name:   "s3-access-key",
		Usage:  "static access key; empty uses the default credential chain",
		EnvVar: "PT_S3_ACCESS_KEY",
	},
	cli.StringFlag{
		Name:   "s3-secret-key",
		Usage:  "static secret key",
		EnvVar: "PT_S3_SECRET_KEY",
	},
}, SceneFlags...)

// configFromContext collects the command flags into a Config
func configFromContext(ctx *cli.Context) config.Config {
	return config.Config{
		Scene:           ctx.String("scene"),
		Width:           ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		Workers:         ctx.Int("workers"),
		TileSize:        ctx.Int("tile-size"),
		Seed:            ctx.Int64("seed"),
		Output:          ctx.String("out"),
		PreviewWidth:    ctx.Int("preview-width"),
		TexturePath:     ctx.String("texture"),
		S3: config.S3Config{
			Bucket:    ctx.String("s3-bucket"),
			Region:    ctx.String("s3-region"),
			Endpoint:  ctx.String("s3-endpoint"),
			Prefix:    ctx.String("s3-prefix"),
			AccessKey: ctx.String("s3-access-key"),
			SecretKey: ctx.String("s3-secret-key"),
		},
	}
}
