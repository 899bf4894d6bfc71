package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("pathtracer")

// setupLogging applies --log-level, then lets -v and -vv raise verbosity.
func setupLogging(ctx *cli.Context) error {
	level, err := log.ParseLevel(ctx.GlobalString("log-level"))
	if err != nil {
		return err
	}

	if ctx.GlobalBool("v") && level > log.Info {
		level = log.Info
	}
	if ctx.GlobalBool("vv") {
		level = log.Debug
	}

	log.SetLevel(level)
	return nil
}

// LoadEnv loads the env files named by the global --env-file flag before
// command flags read their environment variables.
func LoadEnv(ctx *cli.Context) error {
	return config.LoadEnv(ctx.GlobalStringSlice("env-file")...)
}
