package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestMat4Mul(t *testing.T) {
	m1 := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	}
	m2 := Mat4{
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	}
	exp := Mat4{
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	}

	if got := m1.Mul4(m2); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}

	if got := m1.Mul4(Ident4()); got != m1 {
		t.Fatalf("expected multiplication with identity to be a no-op; got %v", got)
	}
}

func TestMat4MulPoint(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	}

	if got, exp := m.MulPoint(XYZ(1, 2, 3)), XYZ(18, 24, 33); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}

	if got, exp := m.MulDir(XYZ(1, 2, 3)), XYZ(14, 22, 32); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}

	// Non-affine matrices project the result back to w = 1
	projective := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 1, 1,
	}
	if got, exp := projective.MulPoint(XYZ(2, 4, 3)), XYZ(0.5, 1, 0.75); got != exp {
		t.Fatalf("expected projected point %v; got %v", exp, got)
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	}
	exp := Mat4{
		1, 2, 8, 0,
		2, 4, 6, 0,
		3, 4, 4, 0,
		4, 2, 1, 1,
	}

	if got := m.Transpose(); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}

	if got := Ident4().Transpose(); got != Ident4() {
		t.Fatalf("expected transposed identity to be identity; got %v", got)
	}
}

func TestSubmatrix(t *testing.T) {
	m4 := Mat4{
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	}
	exp3 := Mat3{
		2, 4, 2,
		8, 6, 1,
		0, 0, 1,
	}
	got3 := m4.Submatrix(0, 2)
	if got3 != exp3 {
		t.Fatalf("expected %v; got %v", exp3, got3)
	}

	exp2 := [4]float32{2, 2, 8, 1}
	if got2 := got3.Submatrix(2, 1); got2 != exp2 {
		t.Fatalf("expected %v; got %v", exp2, got2)
	}
}

func TestMinorAndCofactor(t *testing.T) {
	m := Mat3{
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	}

	type spec struct {
		row, col    int
		expMinor    float32
		expCofactor float32
	}
	specs := []spec{
		{0, 0, -12, -12},
		{1, 0, 25, -25},
	}

	for index, s := range specs {
		if got := m.Minor(s.row, s.col); got != s.expMinor {
			t.Fatalf("[spec %d] expected minor to be %f; got %f", index, s.expMinor, got)
		}
		if got := m.Cofactor(s.row, s.col); got != s.expCofactor {
			t.Fatalf("[spec %d] expected cofactor to be %f; got %f", index, s.expCofactor, got)
		}
	}
}

func TestDeterminant(t *testing.T) {
	m3 := Mat3{
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	}
	if got := m3.Det(); got != -196 {
		t.Fatalf("expected 3x3 determinant to be -196; got %f", got)
	}

	m4 := Mat4{
		-2, -8, 3, 5,
		-3, 1, 7, 3,
		1, 2, -9, 6,
		-6, 7, 7, -9,
	}
	if got := m4.Det(); got != -4071 {
		t.Fatalf("expected 4x4 determinant to be -4071; got %f", got)
	}

	expCofactors := []float32{690, 447, 210, 51}
	for col, exp := range expCofactors {
		if got := m4.Cofactor(0, col); got != exp {
			t.Fatalf("expected cofactor(0, %d) to be %f; got %f", col, exp, got)
		}
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4{
		-5, 2, 6, -8,
		1, -5, 1, 8,
		7, 7, -6, -7,
		1, -3, 7, 4,
	}
	exp := Mat4{
		0.21805, 0.45113, 0.24060, -0.04511,
		-0.80827, -1.45677, -0.44361, 0.52068,
		-0.07895, -0.22368, -0.05263, 0.19737,
		-0.52256, -0.81391, -0.30075, 0.30639,
	}

	got, err := m.Inv()
	if err != nil {
		t.Fatal(err)
	}
	if !got.ApproxEqual(exp) {
		t.Fatalf("expected %v; got %v", exp, got)
	}
}

func TestMat4InverseSingular(t *testing.T) {
	m := Mat4{
		-4, 2, -2, -3,
		9, 6, 2, 6,
		0, -5, 1, -5,
		0, 0, 0, 0,
	}

	_, err := m.Inv()
	if err != ErrSingularMatrix {
		t.Fatalf("expected to get ErrSingularMatrix; got %v", err)
	}

	_, err = Scale4(1, 0, 1).Inv()
	if err != ErrSingularMatrix {
		t.Fatalf("expected degenerate scaling to be singular; got %v", err)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	specs := []Mat4{
		{
			8, -5, 9, 2,
			7, 5, 6, 1,
			-6, 0, 9, 6,
			-3, 0, -9, -4,
		},
		Translate4(5, -3, 2).Mul4(RotateY4(0.7)).Mul4(Scale4(1, 0.5, 3)),
		Shear4(1, 0, 0.5, 0, 0, 2).Mul4(RotateZ4(math32.Pi / 5)),
	}
	points := []Vec3{XYZ(0, 0, 0), XYZ(1, 2, 3), XYZ(-4, 0.5, 7)}

	for index, m := range specs {
		inv, err := m.Inv()
		if err != nil {
			t.Fatalf("[spec %d] %v", index, err)
		}

		if got := m.Mul4(inv); !got.ApproxEqual(Ident4()) {
			t.Fatalf("[spec %d] expected M * M^-1 to be identity; got %v", index, got)
		}

		for _, p := range points {
			if got := inv.MulPoint(m.MulPoint(p)); !got.ApproxEqual(p) {
				t.Fatalf("[spec %d] expected round-trip of %v to be a no-op; got %v", index, p, got)
			}
		}
	}
}

func TestElementaryTransforms(t *testing.T) {
	f := math32.Sqrt(2) / 2

	type spec struct {
		descr string
		m     Mat4
		in    Vec3
		exp   Vec3
	}
	specs := []spec{
		{"translate", Translate4(5, -3, 2), XYZ(-3, 4, 5), XYZ(2, 1, 7)},
		{"scale", Scale4(2, 3, 4), XYZ(-4, 6, 8), XYZ(-8, 18, 32)},
		{"reflect via scale", Scale4(-1, 1, 1), XYZ(2, 3, 4), XYZ(-2, 3, 4)},
		{"rotate x quarter", RotateX4(math32.Pi / 4), XYZ(0, 1, 0), XYZ(0, f, f)},
		{"rotate x half", RotateX4(math32.Pi / 2), XYZ(0, 1, 0), XYZ(0, 0, 1)},
		{"rotate y quarter", RotateY4(math32.Pi / 4), XYZ(0, 0, 1), XYZ(f, 0, f)},
		{"rotate y half", RotateY4(math32.Pi / 2), XYZ(0, 0, 1), XYZ(1, 0, 0)},
		{"rotate z quarter", RotateZ4(math32.Pi / 4), XYZ(0, 1, 0), XYZ(-f, f, 0)},
		{"rotate z half", RotateZ4(math32.Pi / 2), XYZ(0, 1, 0), XYZ(-1, 0, 0)},
		{"shear xy", Shear4(1, 0, 0, 0, 0, 0), XYZ(2, 3, 4), XYZ(5, 3, 4)},
		{"shear xz", Shear4(0, 1, 0, 0, 0, 0), XYZ(2, 3, 4), XYZ(6, 3, 4)},
		{"shear yx", Shear4(0, 0, 1, 0, 0, 0), XYZ(2, 3, 4), XYZ(2, 5, 4)},
		{"shear yz", Shear4(0, 0, 0, 1, 0, 0), XYZ(2, 3, 4), XYZ(2, 7, 4)},
		{"shear zx", Shear4(0, 0, 0, 0, 1, 0), XYZ(2, 3, 4), XYZ(2, 3, 6)},
		{"shear zy", Shear4(0, 0, 0, 0, 0, 1), XYZ(2, 3, 4), XYZ(2, 3, 7)},
		{"inverse scale", mustInv(t, Scale4(2, 3, 4)), XYZ(-4, 6, 8), XYZ(-2, 2, 2)},
	}

	for _, s := range specs {
		if got := s.m.MulPoint(s.in); !got.ApproxEqual(s.exp) {
			t.Fatalf("[%s] expected %v; got %v", s.descr, s.exp, got)
		}
	}

	// Translations do not affect directions
	if got, exp := Translate4(5, -3, 2).MulDir(XYZ(-3, 4, 5)), XYZ(-3, 4, 5); got != exp {
		t.Fatalf("expected translation to leave direction unchanged; got %v", got)
	}
}

func TestChainedTransforms(t *testing.T) {
	p := XYZ(1, 0, 1)
	m := Translate4(10, 5, 7).Mul4(Scale4(5, 5, 5)).Mul4(RotateX4(math32.Pi / 2))

	if got, exp := m.MulPoint(p), XYZ(15, 0, 7); !got.ApproxEqual(exp) {
		t.Fatalf("expected %v; got %v", exp, got)
	}
}

func TestRotateAxis(t *testing.T) {
	angles := []float32{0, math32.Pi / 5, math32.Pi / 2, 2.5}

	for _, angle := range angles {
		if got, exp := RotateAxis4(XYZ(1, 0, 0), angle), RotateX4(angle); !got.ApproxEqual(exp) {
			t.Fatalf("[x, %f] expected %v; got %v", angle, exp, got)
		}
		if got, exp := RotateAxis4(XYZ(0, 2, 0), angle), RotateY4(angle); !got.ApproxEqual(exp) {
			t.Fatalf("[y, %f] expected %v; got %v", angle, exp, got)
		}
		if got, exp := RotateAxis4(XYZ(0, 0, 1), angle), RotateZ4(angle); !got.ApproxEqual(exp) {
			t.Fatalf("[z, %f] expected %v; got %v", angle, exp, got)
		}
	}
}

func TestLookAt(t *testing.T) {
	type spec struct {
		descr           string
		eye, target, up Vec3
		exp             Mat4
	}
	specs := []spec{
		{"default orientation", XYZ(0, 0, 0), XYZ(0, 0, -1), XYZ(0, 1, 0), Ident4()},
		{"looking in positive z", XYZ(0, 0, 0), XYZ(0, 0, 1), XYZ(0, 1, 0), Scale4(-1, 1, -1)},
		{"moves the world", XYZ(0, 0, 8), XYZ(0, 0, 0), XYZ(0, 1, 0), Translate4(0, 0, -8)},
		{
			"arbitrary", XYZ(1, 3, 2), XYZ(4, -2, 8), XYZ(1, 1, 0),
			Mat4{
				-0.50709, 0.50709, 0.67612, -2.36643,
				0.76772, 0.60609, 0.12122, -2.82843,
				-0.35857, 0.59761, -0.71714, 0.00000,
				0.00000, 0.00000, 0.00000, 1.00000,
			},
		},
	}

	for _, s := range specs {
		if got := LookAtV(s.eye, s.target, s.up); !got.ApproxEqual(s.exp) {
			t.Fatalf("[%s] expected %v; got %v", s.descr, s.exp, got)
		}
	}
}

func mustInv(t *testing.T, m Mat4) Mat4 {
	inv, err := m.Inv()
	if err != nil {
		t.Fatal(err)
	}
	return inv
}
