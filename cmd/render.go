package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/achilleasa/go-raytrace/asset/scene"
	"github.com/achilleasa/go-raytrace/asset/scene/reader"
	"github.com/achilleasa/go-raytrace/renderer"
	"github.com/achilleasa/go-raytrace/tracer"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() > 1 {
		return errors.New("expected at most one scene file argument")
	}

	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	scheduler, err := selectScheduler(ctx.String("scheduler"))
	if err != nil {
		return err
	}

	world, err := sc.Build()
	if err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW:  uint32(ctx.Int("width")),
		FrameH:  uint32(ctx.Int("height")),
		Workers: ctx.Int("workers"),
	}

	r, err := renderer.NewDefault(world, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	renderCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = r.Render(renderCtx); err != nil {
		return err
	}

	displayFrameStats(r.Stats())

	imgFile := ctx.String("out")
	if err = r.Frame().Save(imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", imgFile)

	return nil
}

// Load the scene from the specified file or fall back to the demo scene if
// no file is given.
func loadScene(sceneFile string) (*scene.Scene, error) {
	if sceneFile == "" {
		logger.Notice("no scene file specified; rendering demo scene")
		return scene.Demo(), nil
	}
	return reader.ReadScene(sceneFile)
}

func selectScheduler(name string) (tracer.BlockScheduler, error) {
	switch name {
	case "", "naive":
		return tracer.NaiveScheduler(), nil
	case "perfect":
		return tracer.PerfectScheduler(), nil
	}
	return nil, fmt.Errorf("unknown block scheduler %q", name)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Block start", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockY),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame %s statistics\n%s", stats.FrameID, buf.String())
}
