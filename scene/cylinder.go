package scene

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/types"
)

// The default half-height for cylinders created via NewCylinder.
const DefaultCylinderHeight float32 = 2.0

// An open, unit radius cylinder around the object space Y axis that extends
// from -Height to +Height.
type Cylinder struct {
	Height float32
}

// Solve the ray/cylinder quadratic on the XZ plane and discard any roots
// that fall outside the cylinder height.
func (cyl Cylinder) IntersectLocal(r types.Ray) []float32 {
	a := r.Dir.DotXZ(r.Dir)

	// Ray is parallel to the cylinder axis
	if a < types.Epsilon {
		return nil
	}

	b := r.Dir.DotXZ(r.Origin)
	c := r.Origin.DotXZ(r.Origin) - 1

	disc := b*b - a*c
	if disc < 0 {
		return nil
	}

	discSqrt := math32.Sqrt(disc)
	hits := make([]float32, 0, 2)
	for _, t := range [2]float32{(-b - discSqrt) / a, (-b + discSqrt) / a} {
		if y := r.Origin[1] + t*r.Dir[1]; math32.Abs(y) <= cyl.Height {
			hits = append(hits, t)
		}
	}

	return hits
}

func (Cylinder) NormalLocal(p types.Vec3) types.Vec3 {
	return types.XYZ(p[0], 0, p[2])
}
