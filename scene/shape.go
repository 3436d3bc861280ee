package scene

import (
	"fmt"

	"github.com/achilleasa/go-raytrace/types"
)

// The offset applied along the surface normal when spawning secondary rays
// from a hit point.
const HitBias float32 = 0.001

// Shapes are identified by their index in the world shape list.
type ShapeID int

// The Geometry interface is implemented by all shape variants. Geometries
// operate exclusively in object space.
type Geometry interface {
	// Get the parametric distances where the object space ray meets
	// the surface. A nil or empty result indicates a miss.
	IntersectLocal(r types.Ray) []float32

	// Get the (not necessarily normalized) surface normal at an object
	// space point.
	NormalLocal(p types.Vec3) types.Vec3
}

// A Shape combines a geometry with a transform and a material.
type Shape struct {
	Transform

	geometry Geometry
	material Material
}

// Create a new shape for the given geometry using an identity transform and
// the default material.
func NewShape(geometry Geometry) *Shape {
	return &Shape{
		Transform: IdentityTransform(),
		geometry:  geometry,
		material:  DefaultMaterial(),
	}
}

// Create a unit sphere centered at the origin.
func NewSphere() *Shape {
	return NewShape(Sphere{})
}

// Create a plane that spans the XZ axes.
func NewPlane() *Shape {
	return NewShape(Plane{})
}

// Create a unit radius cylinder around the Y axis with the default height.
func NewCylinder() *Shape {
	return NewShape(Cylinder{Height: DefaultCylinderHeight})
}

// Get the shape geometry.
func (s *Shape) Geometry() Geometry {
	return s.geometry
}

// Get the shape material.
func (s *Shape) Material() *Material {
	return &s.material
}

// Intersect a world space ray with the shape and return the parametric
// distances of all hits.
func (s *Shape) Intersect(r types.Ray) []float32 {
	return s.geometry.IntersectLocal(r.Transform(s.inverse))
}

// Get the world space unit normal at a world space point.
func (s *Shape) NormalAt(p types.Vec3) types.Vec3 {
	return s.NormalToWorld(s.geometry.NormalLocal(s.PointToObject(p)))
}

// Get the surface color at a world space point.
func (s *Shape) ColorAt(p types.Vec3) types.Vec3 {
	return s.material.ColorAt(s.PointToObject(p))
}

// Set the shape material.
func (s *Shape) SetMaterial(m Material) *Shape {
	s.material = m
	return s
}

// Translate shape.
func (s *Shape) Translate(x, y, z float32) *Shape {
	return s.mustApply(types.Translate4(x, y, z))
}

// Scale shape.
func (s *Shape) Scale(x, y, z float32) *Shape {
	return s.mustApply(types.Scale4(x, y, z))
}

// Rotate shape around the X axis.
func (s *Shape) RotateX(angle float32) *Shape {
	return s.mustApply(types.RotateX4(angle))
}

// Rotate shape around the Y axis.
func (s *Shape) RotateY(angle float32) *Shape {
	return s.mustApply(types.RotateY4(angle))
}

// Rotate shape around the Z axis.
func (s *Shape) RotateZ(angle float32) *Shape {
	return s.mustApply(types.RotateZ4(angle))
}

// Rotate shape around an arbitrary axis.
func (s *Shape) Rotate(axis types.Vec3, angle float32) *Shape {
	return s.mustApply(types.RotateAxis4(axis, angle))
}

// Shear shape.
func (s *Shape) Shear(xy, xz, yx, yz, zx, zy float32) *Shape {
	return s.mustApply(types.Shear4(xy, xz, yx, yz, zx, zy))
}

// Builder methods are only used while assembling a scene so a degenerate
// transform is treated as a programming error.
func (s *Shape) mustApply(m types.Mat4) *Shape {
	if err := s.Apply(m); err != nil {
		panic(fmt.Errorf("scene: invalid shape transform: %s", err))
	}
	return s
}
