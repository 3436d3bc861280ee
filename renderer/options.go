package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of block workers. If zero, one worker per available CPU is used.
	Workers int
}
