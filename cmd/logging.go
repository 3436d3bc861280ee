package cmd

import (
	"github.com/urfave/cli"

	"github.com/achilleasa/go-raytrace/log"
)

var logger = log.New("raytrace")

// Configure the log level from the global flags. The -v and -vv flags take
// precedence over --log-level.
func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	logger.Debugf("log level set to %s", log.GetLevel())
	return nil
}
