package tracer

import (
	"math"
	"time"
)

// Block statistics collected by a BlockTracer after rendering its rows.
type Stats struct {
	// The first row and height of the last rendered block.
	BlockY uint32
	BlockH uint32

	// The time it took to render the block.
	RenderTime time.Duration
}

// The BlockTracer interface is implemented by workers that render a
// contiguous block of frame rows.
type BlockTracer interface {
	// Get tracer id.
	Id() string

	// Get the tracer's computation speed estimate compared to a
	// baseline implementation.
	SpeedEstimate() float32

	// Retrieve last block statistics.
	Stats() *Stats
}

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign them to the
	// pool of tracers. The returned slice contains the block height for
	// each tracer in the input list.
	Schedule(tracers []BlockTracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame proportionally to the speed estimate
// of each tracer.
type naiveScheduler struct{}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

func (naiveScheduler) Schedule(tracers []BlockTracer, frameH uint32) []uint32 {
	rates := make([]float64, len(tracers))
	for idx, tr := range tracers {
		rates[idx] = float64(tr.SpeedEstimate())
	}
	return distributeRows(rates, frameH)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same.
type perfectScheduler struct {
	scheduled int
}

// Create a new perfect scheduler instance.
func PerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// When previous frame information is available the scheduler uses the
// following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (blockH,w_i / time,w_i) / Σ(blockH_i-1 / time,i-1)
func (sch *perfectScheduler) Schedule(tracers []BlockTracer, frameH uint32) []uint32 {
	// If this is the first time we schedule or the number of tracers
	// has changed fall back to the speed estimates
	if sch.scheduled != len(tracers) {
		sch.scheduled = len(tracers)
		return NaiveScheduler().Schedule(tracers, frameH)
	}

	rates := make([]float64, len(tracers))
	for idx, tr := range tracers {
		stats := tr.Stats()
		renderTime := stats.RenderTime
		if renderTime <= 0 {
			renderTime = 1
		}
		rates[idx] = float64(stats.BlockH) / float64(renderTime)
	}
	return distributeRows(rates, frameH)
}

// Assign each tracer at least one row and a share of the frame proportional
// to its rate. Any rows left over due to rounding go to the first tracer.
func distributeRows(rates []float64, frameH uint32) []uint32 {
	assignment := make([]uint32, len(rates))
	if len(rates) == 0 {
		return assignment
	}

	var total float64
	for _, rate := range rates {
		total += rate
	}
	if total <= 0 {
		for idx := range rates {
			rates[idx] = 1
		}
		total = float64(len(rates))
	}

	scaler := float64(frameH) / total
	var scheduledRows int64
	for idx, rate := range rates {
		assignment[idx] = uint32(math.Max(1.0, math.Floor(rate*scaler)))
		scheduledRows += int64(assignment[idx])
	}

	first := int64(assignment[0]) + int64(frameH) - scheduledRows
	if first < 1 {
		first = 1
	}
	assignment[0] = uint32(first)

	return assignment
}
