package scene

import "github.com/achilleasa/go-raytrace/types"

// The Transformable interface is implemented by scene entities that can be
// placed in world space using an affine transformation.
type Transformable interface {
	// Get the forward (object to world) transformation matrix.
	Matrix() types.Mat4

	// Get the cached inverse (world to object) transformation matrix.
	Inverse() types.Mat4

	// Replace the transformation matrix.
	SetTransform(types.Mat4) error

	// Compose m onto the current transformation.
	Apply(m types.Mat4) error
}

// Transform holds a forward transformation matrix together with its inverse.
// Both matrices are always updated together.
type Transform struct {
	matrix  types.Mat4
	inverse types.Mat4
}

// Create an identity transform.
func IdentityTransform() Transform {
	return Transform{
		matrix:  types.Ident4(),
		inverse: types.Ident4(),
	}
}

// Get the forward transformation matrix.
func (t *Transform) Matrix() types.Mat4 {
	return t.matrix
}

// Get the inverse transformation matrix.
func (t *Transform) Inverse() types.Mat4 {
	return t.inverse
}

// Replace the transformation matrix and recalculate its inverse. If m cannot
// be inverted the transform is left unchanged and ErrSingularMatrix is returned.
func (t *Transform) SetTransform(m types.Mat4) error {
	inv, err := m.Inv()
	if err != nil {
		return err
	}

	t.matrix = m
	t.inverse = inv
	return nil
}

// Compose m onto the current transformation so that the new transform
// becomes current * m.
func (t *Transform) Apply(m types.Mat4) error {
	return t.SetTransform(t.matrix.Mul4(m))
}

// Map a world space point to object space.
func (t *Transform) PointToObject(p types.Vec3) types.Vec3 {
	return t.inverse.MulPoint(p)
}

// Map an object space normal to world space using the transpose of the
// inverse transform. The returned vector is normalized.
func (t *Transform) NormalToWorld(n types.Vec3) types.Vec3 {
	return t.inverse.Transpose().MulDir(n).Normalize()
}
