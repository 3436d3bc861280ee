package tracer

import (
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// The maximum recursion depth for reflected rays.
const MaxDepth uint32 = 10

// A Whitted-style recursive ray tracer. A tracer keeps no state between
// calls so it can be shared by goroutines rendering the same world.
type Tracer struct {
	world *scene.World
}

// Create a tracer for the given world.
func NewTracer(w *scene.World) *Tracer {
	return &Tracer{world: w}
}

// Get the world that this tracer renders.
func (tr *Tracer) World() *scene.World {
	return tr.world
}

// Trace the camera ray for pixel (x, y).
func (tr *Tracer) TracePixel(x, y uint32) types.Vec3 {
	return tr.Trace(tr.world.Camera().GetRay(x, y), 0)
}

// Get the color seen along r. Rays that miss every shape or exceed MaxDepth
// return black. The returned color is not clamped.
func (tr *Tracer) Trace(r types.Ray, depth uint32) types.Vec3 {
	if depth > MaxDepth {
		return types.Vec3{}
	}

	hit, ok := tr.world.Intersect(r).Hit()
	if !ok {
		return types.Vec3{}
	}

	comp := PrepareComp(tr.world, hit, r)

	var color types.Vec3
	if reflective := tr.world.Shape(hit.Shape).Material().Reflective; reflective > 0 && depth < MaxDepth {
		reflected := types.NewRay(comp.OverPoint, comp.Reflect)
		color = tr.Trace(reflected, depth+1).Mul(reflective)
	}

	return color.Add(tr.ShadeHit(comp))
}
