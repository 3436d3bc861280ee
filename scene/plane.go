package scene

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/types"
)

// The XZ plane at y = 0.
type Plane struct{}

// Returns a single hit. Rays that run parallel to the plane or hit it behind
// their origin are treated as misses.
func (Plane) IntersectLocal(r types.Ray) []float32 {
	if math32.Abs(r.Dir[1]) < types.Epsilon {
		return nil
	}

	t := -r.Origin[1] / r.Dir[1]
	if t < types.Epsilon {
		return nil
	}

	return []float32{t}
}

func (Plane) NormalLocal(_ types.Vec3) types.Vec3 {
	return types.XYZ(0, 1, 0)
}
