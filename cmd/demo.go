package cmd

import (
	"os"

	"github.com/urfave/cli"

	"github.com/achilleasa/go-raytrace/asset/scene"
)

// Write the demo scene description as JSON to the file specified by the out
// flag or to stdout.
func WriteDemoScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	outFile := ctx.String("out")
	if outFile == "" {
		return scene.Demo().Encode(os.Stdout)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = scene.Demo().Encode(f); err != nil {
		return err
	}

	logger.Noticef("wrote demo scene to %s", outFile)
	return nil
}
