package scene

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/types"
)

// A unit sphere centered at the object space origin.
type Sphere struct{}

// Solve the ray/sphere quadratic. The b term is halved which removes the
// constant factors from the discriminant.
func (Sphere) IntersectLocal(r types.Ray) []float32 {
	a := r.Dir.Dot(r.Dir)
	b := r.Dir.Dot(r.Origin)
	c := r.Origin.Dot(r.Origin) - 1

	disc := b*b - a*c
	if disc < 0 {
		return nil
	}

	discSqrt := math32.Sqrt(disc)
	return []float32{
		(-b - discSqrt) / a,
		(-b + discSqrt) / a,
	}
}

func (Sphere) NormalLocal(p types.Vec3) types.Vec3 {
	return p.Normalize()
}
