package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderFrame renders a still frame of a preset scene.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg := configFromContext(ctx)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutputPath(cfg.Scene, time.Now())
	}

	sc, err := scene.New(cfg.Scene, sceneOptions(cfg))
	if err != nil {
		return err
	}

	camera, err := renderer.NewCamera(cameraConfig(sc.Camera, cfg))
	if err != nil {
		return err
	}
	rt, err := renderer.NewRaytracer(sc.World, sc.Lights, camera, renderer.Options{
		Workers:  cfg.Workers,
		TileSize: cfg.TileSize,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return err
	}

	// Ctrl-C stops the render after the tiles in flight
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, renderErr := rt.Render(renderCtx)
	if renderErr != nil && !errors.Is(renderErr, renderer.ErrInterrupted) {
		return renderErr
	}
	displayFrameStats(cfg.Scene, stats)

	// A partial frame is still written so interrupted work is not lost
	if err := saveFrame(context.Background(), cfg, img); err != nil {
		return err
	}
	return renderErr
}

// sceneOptions extracts the preset inputs from cfg
func sceneOptions(cfg config.Config) scene.Options {
	return scene.Options{TexturePath: cfg.TexturePath, Seed: cfg.Seed}
}

// cameraConfig applies the non-zero overrides in cfg to the preset camera
func cameraConfig(preset renderer.CameraConfig, cfg config.Config) renderer.CameraConfig {
	if cfg.Width > 0 {
		preset.ImageWidth = cfg.Width
	}
	if cfg.SamplesPerPixel > 0 {
		preset.SamplesPerPixel = cfg.SamplesPerPixel
	}
	if cfg.MaxDepth > 0 {
		preset.MaxDepth = cfg.MaxDepth
	}
	return preset
}

func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// saveFrame writes the frame, its optional preview and the optional upload
func saveFrame(ctx context.Context, cfg config.Config, img *image.RGBA) error {
	var sinks output.MultiSink
	sinks = append(sinks, output.NewFileSink(""))
	if cfg.S3.Enabled() {
		s3Sink, err := output.NewS3Sink(cfg.S3)
		if err != nil {
			return err
		}
		sinks = append(sinks, s3Sink)
	}

	if err := sinks.Save(ctx, cfg.Output, img); err != nil {
		return err
	}
	if cfg.PreviewWidth > 0 {
		preview := output.Preview(img, uint(cfg.PreviewWidth))
		if err := sinks.Save(ctx, output.PreviewName(cfg.Output), preview); err != nil {
			return err
		}
	}
	return nil
}

func displayFrameStats(sceneName string, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "SPP", "Tiles", "Workers", "Samples", "NaN pixels", "Render time"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.GuardedPixels),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "SAMPLES/S", fmt.Sprintf("%.0f", stats.SamplesPerSecond())})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
