package types

import (
	"errors"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero.
var ErrSingularMatrix = errors.New("types: matrix is not invertible")

// Matrices are stored in row-major order.
type Mat3 f32.Mat3
type Mat4 f32.Mat4

// Create a 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}


// Multiply two 4x4 matrices.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * m2[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Multiply matrix with a 4 component column vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// Transform a point (w = 1). Translations are applied. If the matrix is not
// affine the result is projected back to w = 1.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	out := m.Mul4x1(p.Vec4(1))
	if out[3] != 1 && out[3] != 0 {
		return out.Vec3().Div(out[3])
	}
	return out.Vec3()
}

// Transform a direction vector (w = 0). Translations are ignored.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// Transpose matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// Extract the 3x3 matrix that remains after removing the specified row and column.
func (m Mat4) Submatrix(row, col int) Mat3 {
	var out Mat3
	copy(out[:], submatrix(m[:], 4, row, col))
	return out
}

// Calculate the minor for the specified element.
func (m Mat4) Minor(row, col int) float32 {
	return m.Submatrix(row, col).Det()
}

// Calculate the cofactor for the specified element.
func (m Mat4) Cofactor(row, col int) float32 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Calculate matrix determinant by expanding along the first row.
func (m Mat4) Det() float32 {
	var det float32
	for col := 0; col < 4; col++ {
		det += m[col] * m.Cofactor(0, col)
	}
	return det
}

// Calculate the inverse matrix as adjugate / determinant. Returns
// ErrSingularMatrix if the determinant is zero.
func (m Mat4) Inv() (Mat4, error) {
	det := m.Det()
	if det == 0 {
		return Mat4{}, ErrSingularMatrix
	}

	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed store
			out[col*4+row] = m.Cofactor(row, col) / det
		}
	}
	return out, nil
}

// Compare two matrices using Epsilon as the per-element tolerance.
func (m Mat4) ApproxEqual(m2 Mat4) bool {
	for i := range m {
		if math32.Abs(m[i]-m2[i]) > Epsilon {
			return false
		}
	}
	return true
}

// Extract the 2x2 matrix that remains after removing the specified row and column.
func (m Mat3) Submatrix(row, col int) [4]float32 {
	var out [4]float32
	copy(out[:], submatrix(m[:], 3, row, col))
	return out
}

// Calculate the minor for the specified element.
func (m Mat3) Minor(row, col int) float32 {
	sub := m.Submatrix(row, col)
	return sub[0]*sub[3] - sub[1]*sub[2]
}

// Calculate the cofactor for the specified element.
func (m Mat3) Cofactor(row, col int) float32 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

// Calculate matrix determinant by expanding along the first row.
func (m Mat3) Det() float32 {
	var det float32
	for col := 0; col < 3; col++ {
		det += m[col] * m.Cofactor(0, col)
	}
	return det
}

func cofactorSign(row, col int) float32 {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}

func submatrix(m []float32, n, row, col int) []float32 {
	out := make([]float32, 0, (n-1)*(n-1))
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < n; c++ {
			if c == col {
				continue
			}
			out = append(out, m[r*n+c])
		}
	}
	return out
}

// Create a translation matrix.
func Translate4(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Create a scaling matrix.
func Scale4(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix around the X axis. The angle is specified in radians.
func RotateX4(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix around the Y axis. The angle is specified in radians.
func RotateY4(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	return Mat4{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix around the Z axis. The angle is specified in radians.
func RotateZ4(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	return Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix around an arbitrary axis. The axis does not need
// to be normalized; the angle is specified in radians.
func RotateAxis4(axis Vec3, angle float32) Mat4 {
	return QuatFromAxisAngle(axis, angle).Mat4()
}

// Create a shearing matrix. Each argument moves the first named component
// in proportion to the second one (e.g. xy moves x in proportion to y).
func Shear4(xy, xz, yx, yz, zx, zy float32) Mat4 {
	return Mat4{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	}
}

// Create a view transformation matrix for an eye positioned at eye, looking
// at target with the specified up vector.
func LookAtV(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Mat4{
		left[0], left[1], left[2], 0,
		trueUp[0], trueUp[1], trueUp[2], 0,
		-forward[0], -forward[1], -forward[2], 0,
		0, 0, 0, 1,
	}

	return orientation.Mul4(Translate4(-eye[0], -eye[1], -eye[2]))
}
