package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// ListScenes displays the registered presets with their default settings.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "SPP", "Max depth", "Description"})

	// Presets that need a missing texture report the error in place of their settings
	for _, preset := range scene.Presets() {
		sc, err := scene.New(preset.Name, scene.Options{TexturePath: ctx.String("texture"), Seed: ctx.Int64("seed")})
		if err != nil {
			table.Append([]string{preset.Name, "-", "-", "-", fmt.Sprintf("%s (%v)", preset.Description, err)})
			continue
		}
		table.Append([]string{
			preset.Name,
			fmt.Sprintf("%dx%d", sc.Camera.ImageWidth, sc.Camera.ImageHeight()),
			fmt.Sprintf("%d", sc.Camera.SamplesPerPixel),
			fmt.Sprintf("%d", sc.Camera.MaxDepth),
			preset.Description,
		})
	}

	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
