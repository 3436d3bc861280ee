package types

// A ray with an origin and a direction. Points along the ray are
// given by origin + t * direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Create a new ray.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Get the point at parametric distance t.
func (r Ray) Position(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Transform ray by matrix m. The direction is not re-normalized so that
// parametric distances remain valid in the transformed space.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin: m.MulPoint(r.Origin),
		Dir:    m.MulDir(r.Dir),
	}
}
