package scene

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/types"
)

// The Pattern interface is implemented by all surface color generators.
type Pattern interface {
	// Get the color at an object space point.
	ColorAt(p types.Vec3) types.Vec3
}

// A single color pattern.
type SolidPattern types.Vec3

func (sp SolidPattern) ColorAt(_ types.Vec3) types.Vec3 {
	return types.Vec3(sp)
}

// Alternates between colors A and B for each unit along the X axis.
type StripePattern struct {
	A, B types.Vec3
}

func (sp StripePattern) ColorAt(p types.Vec3) types.Vec3 {
	return pick(sp.A, sp.B, floor(p[0]))
}

// A 3D checkerboard with unit sized cells.
type CheckerPattern struct {
	A, B types.Vec3
}

func (cp CheckerPattern) ColorAt(p types.Vec3) types.Vec3 {
	return pick(cp.A, cp.B, floor(p[0])+floor(p[1])+floor(p[2]))
}

// Concentric unit width rings on the XZ plane.
type RingPattern struct {
	A, B types.Vec3
}

func (rp RingPattern) ColorAt(p types.Vec3) types.Vec3 {
	return pick(rp.A, rp.B, floor(math32.Sqrt(p[0]*p[0]+p[2]*p[2])))
}

// Surface points are often off by a rounding error from an integer cell
// boundary so they are nudged before flooring.
func floor(v float32) int {
	return int(math32.Floor(v + types.Epsilon))
}

func pick(a, b types.Vec3, cell int) types.Vec3 {
	if cell%2 == 0 {
		return a
	}
	return b
}
