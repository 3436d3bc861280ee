package scene

// A ray hit on a shape at parametric distance T.
type Intersection struct {
	T     float32
	Shape ShapeID
}

// A list of intersections sorted by ascending T.
type Intersections []Intersection

// Get the nearest intersection in front of the ray origin. The second return
// value is false if no such intersection exists.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}

	return Intersection{}, false
}
