package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/achilleasa/go-raytrace/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytrace"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.0.1"
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
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning or error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Load a scene description (.json) or a compiled scene (.zip) and render a single
frame. If no scene file is specified, the built-in demo scene is rendered.

The frame is split into row blocks which are traced in parallel. The output
format is selected by the extension of the output file (.png or .ppm).`,
			ArgsUsage: "[scene_file]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (defaults to the scene camera width)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (defaults to the scene camera height)",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of block workers (defaults to the number of CPUs)",
				},
				cli.StringFlag{
					Name:  "scheduler, s",
					Value: "naive",
					Usage: "block scheduler to use (naive or perfect)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "compile",
			Usage: "validate and compress scene descriptions",
			Description: `
Parse and validate one or more JSON scene descriptions and write each one to a
zip archive which can be supplied as an argument to the render command.`,
			ArgsUsage: "scene_file1.json scene_file2.json ...",
			Action:    cmd.CompileScene,
		},
		{
			Name:      "scene-info",
			Usage:     "display a summary of a scene's contents",
			ArgsUsage: "[scene_file]",
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:  "demo",
			Usage: "write the demo scene description",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file; if omitted the description is written to stdout",
				},
			},
			Action: cmd.WriteDemoScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
