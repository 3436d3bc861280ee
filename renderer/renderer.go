package renderer

import "context"

type Renderer interface {
	// Render frame. Rendering stops with ErrInterrupted if ctx is
	// cancelled before all frame rows are traced.
	Render(ctx context.Context) error

	// Get the rendered frame.
	Frame() *Frame

	// Shutdown renderer and release any attached block workers.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
