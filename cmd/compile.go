package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/achilleasa/go-raytrace/asset/scene/reader"
	"github.com/achilleasa/go-raytrace/asset/scene/writer"
)

// Compile JSON scene descriptions into zip archives. Each scene is built
// before being written out so that invalid descriptions are rejected early.
func CompileScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(sceneFile, ".json") {
			return fmt.Errorf("unsupported scene file %s", sceneFile)
		}

		sc, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}
		if _, err = sc.Build(); err != nil {
			return fmt.Errorf("%s: %w", sceneFile, err)
		}

		zipFile := strings.TrimSuffix(sceneFile, ".json") + ".zip"
		if err = writer.WriteScene(sc, zipFile); err != nil {
			return err
		}
	}

	return nil
}
