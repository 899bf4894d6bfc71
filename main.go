package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Value:  "notice",
			Usage:  "minimum level to log: debug, info, notice, warning or error",
			EnvVar: "PT_LOG_LEVEL",
		},
		cli.StringSliceFlag{
			Name:  "env-file",
			Value: &cli.StringSlice{},
			Usage: "load environment variables from this file (default .env if present)",
		},
	}
	app.Before = cmd.LoadEnv
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a preset scene to an image file",
			Description: `
Build a preset scene, trace it with a pool of tile workers and write the frame
to --out. The format follows the file extension. With --preview-width a
downscaled copy is written next to it, and with --s3-bucket both are uploaded.

Interrupting the render writes the tiles finished so far.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list preset scenes and their default settings",
			Flags:  cmd.SceneFlags[1:],
			Action: cmd.ListScenes,
		},
		{
			Name:   "inspect",
			Usage:  "build a preset scene and print its BVH statistics",
			Flags:  cmd.InspectFlags,
			Action: cmd.InspectScene,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
