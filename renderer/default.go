package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/tracer"
)

// A block worker traces a contiguous range of frame rows.
type blockWorker struct {
	id     string
	tracer *tracer.Tracer
	stats  tracer.Stats
}

func (bw *blockWorker) Id() string {
	return bw.id
}

// All workers run on the CPU and share the same baseline speed.
func (bw *blockWorker) SpeedEstimate() float32 {
	return 1.0
}

func (bw *blockWorker) Stats() *tracer.Stats {
	return &bw.stats
}

// Trace rows [blockY, blockY + blockH) into the frame. The context is checked
// before each row.
func (bw *blockWorker) renderBlock(ctx context.Context, frame *Frame, blockY, blockH uint32) error {
	start := time.Now()
	bw.stats.BlockY = blockY
	bw.stats.BlockH = blockH

	frameW := frame.Width()
	for y := blockY; y < blockY+blockH; y++ {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		for x := uint32(0); x < frameW; x++ {
			frame.SetPixel(x, y, bw.tracer.TracePixel(x, y))
		}
	}

	bw.stats.RenderTime = time.Since(start)
	return nil
}

// The default renderer splits the frame into row blocks and traces each
// block on its own goroutine.
type defaultRenderer struct {
	logger log.Logger

	world     *scene.World
	scheduler tracer.BlockScheduler
	options   Options

	frame            *Frame
	workers          []*blockWorker
	blockAssignments []uint32

	stats FrameStats
}

// Create a new default renderer for a world using the specified block
// scheduler. The world camera is resized to the frame dimensions in opts;
// if they are not specified, the camera dimensions are used instead.
func NewDefault(w *scene.World, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if w == nil {
		return nil, ErrSceneNotDefined
	}

	camera := w.Camera()
	if camera == nil {
		return nil, ErrCameraNotDefined
	}

	if opts.FrameW == 0 || opts.FrameH == 0 {
		opts.FrameW, opts.FrameH = camera.Width(), camera.Height()
	} else if err := camera.Resize(opts.FrameW, opts.FrameH); err != nil {
		return nil, err
	}

	if scheduler == nil {
		scheduler = tracer.NaiveScheduler()
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if uint32(opts.Workers) > opts.FrameH {
		opts.Workers = int(opts.FrameH)
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		world:     w,
		scheduler: scheduler,
		options:   opts,
		frame:     NewFrame(opts.FrameW, opts.FrameH),
		workers:   make([]*blockWorker, opts.Workers),
	}

	for idx := range r.workers {
		r.workers[idx] = &blockWorker{
			id:     fmt.Sprintf("cpu-%d", idx),
			tracer: tracer.NewTracer(w),
		}
	}

	r.logger.Infof("attached %d block workers", len(r.workers))
	return r, nil
}

// Shutdown renderer and release block workers.
func (r *defaultRenderer) Close() {
	r.workers = nil
}

// Get the rendered frame.
func (r *defaultRenderer) Frame() *Frame {
	return r.frame
}

// Get last frame stats.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render frame.
func (r *defaultRenderer) Render(ctx context.Context) error {
	if len(r.workers) == 0 {
		return ErrNoWorkers
	}

	frameID := uuid.New().String()
	frameH := r.options.FrameH
	r.logger.Noticef("rendering frame %s (%dx%d) using %d workers", frameID, r.options.FrameW, frameH, len(r.workers))
	start := time.Now()

	tracers := make([]tracer.BlockTracer, len(r.workers))
	for idx, w := range r.workers {
		tracers[idx] = w
	}
	r.blockAssignments = r.scheduler.Schedule(tracers, frameH)

	errChan := make(chan error, len(r.workers))
	doneChan := make(chan struct{}, len(r.workers))
	var blockY uint32
	for idx, w := range r.workers {
		blockH := r.blockAssignments[idx]
		if idx == len(r.workers)-1 || blockY+blockH > frameH {
			blockH = frameH - blockY
		}

		go func(w *blockWorker, blockY, blockH uint32) {
			if err := w.renderBlock(ctx, r.frame, blockY, blockH); err != nil {
				errChan <- err
				return
			}
			doneChan <- struct{}{}
		}(w, blockY, blockH)

		r.logger.Debugf("assigned rows [%d, %d) to %s", blockY, blockY+blockH, w.id)
		blockY += blockH
	}

	// Wait for all workers to finish
	var err error
	for pending := len(r.workers); pending > 0; pending-- {
		select {
		case <-doneChan:
		case err = <-errChan:
		}
	}
	if err != nil {
		r.logger.Warningf("frame %s: %s", frameID, err)
		return err
	}

	r.updateStats(frameID, time.Since(start))
	r.logger.Noticef("rendered frame %s in %s", frameID, r.stats.RenderTime)
	return nil
}

func (r *defaultRenderer) updateStats(frameID string, renderTime time.Duration) {
	r.stats = FrameStats{
		FrameID:    frameID,
		Workers:    make([]WorkerStat, len(r.workers)),
		RenderTime: renderTime,
	}

	for idx, w := range r.workers {
		r.stats.Workers[idx] = WorkerStat{
			Id:           w.id,
			BlockY:       w.stats.BlockY,
			BlockH:       w.stats.BlockH,
			FramePercent: 100.0 * float32(w.stats.BlockH) / float32(r.options.FrameH),
			RenderTime:   w.stats.RenderTime,
		}
		r.logger.Debugf("%s rendered %d rows in %s", w.id, w.stats.BlockH, w.stats.RenderTime)
	}
}
