package cmd

import "github.com/urfave/cli"

// Display a summary of the contents of a scene file.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information\n%s", sc.Stats())
	return nil
}
