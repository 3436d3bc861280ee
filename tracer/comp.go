package tracer

import (
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Comp holds the values derived from a ray hit that are needed for shading.
type Comp struct {
	// The hit distance and shape.
	T     float32
	Shape scene.ShapeID

	// The hit point and its copies offset along the normal by scene.HitBias.
	Point      types.Vec3
	OverPoint  types.Vec3
	UnderPoint types.Vec3

	// Unit vectors at the hit point. The normal always faces the eye.
	Eye     types.Vec3
	Normal  types.Vec3
	Reflect types.Vec3

	// Set when the ray hit the inside of the surface.
	Inside bool
}

// Build the shading context for a hit on r.
func PrepareComp(w *scene.World, hit scene.Intersection, r types.Ray) Comp {
	comp := Comp{
		T:     hit.T,
		Shape: hit.Shape,
		Point: r.Position(hit.T),
		Eye:   r.Dir.Neg(),
	}

	comp.Normal = w.Shape(hit.Shape).NormalAt(comp.Point)
	if comp.Normal.Dot(comp.Eye) < 0 {
		comp.Inside = true
		comp.Normal = comp.Normal.Neg()
	}

	comp.Reflect = r.Dir.Reflect(comp.Normal)
	bias := comp.Normal.Mul(scene.HitBias)
	comp.OverPoint = comp.Point.Add(bias)
	comp.UnderPoint = comp.Point.Sub(bias)

	return comp
}
