package scene

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

func TestBuildDemo(t *testing.T) {
	w, err := Demo().Build()
	if err != nil {
		t.Fatal(err)
	}

	if len(w.Lights()) != 2 {
		t.Fatalf("expected 2 lights; got %d", len(w.Lights()))
	}
	if len(w.Shapes()) != 4 {
		t.Fatalf("expected 4 shapes; got %d", len(w.Shapes()))
	}
	if _, isPlane := w.Shape(0).Geometry().(scene.Plane); !isPlane {
		t.Fatalf("expected first shape to be a plane; got %T", w.Shape(0).Geometry())
	}
	if got := w.Shape(1).Material().Reflective; got != 0.6 {
		t.Fatalf("expected middle sphere to be reflective; got %f", got)
	}

	camera := w.Camera()
	if camera.Width() != 640 || camera.Height() != 320 {
		t.Fatalf("expected camera dims to be 640x320; got %dx%d", camera.Width(), camera.Height())
	}
	if exp := radians(60); math32.Abs(camera.FOV()-exp) > types.Epsilon {
		t.Fatalf("expected camera fov to be %f; got %f", exp, camera.FOV())
	}
}

func TestBuildDefaults(t *testing.T) {
	sc := &Scene{
		Camera: Camera{Eye: types.XYZ(0, 0, -5), LookAt: types.XYZ(0, 0, 0)},
		Shapes: []Shape{{Type: "sphere"}, {Type: "cylinder"}},
	}

	w, err := sc.Build()
	if err != nil {
		t.Fatal(err)
	}

	if c := w.Camera(); c.Width() != DefaultFrameW || c.Height() != DefaultFrameH {
		t.Fatalf("expected default camera dims %dx%d; got %dx%d", DefaultFrameW, DefaultFrameH, c.Width(), c.Height())
	}
	if got := *w.Shape(0).Material(); got.Ambient != 0.1 || got.Shininess != 200 {
		t.Fatalf("expected shape without a material to use the default one; got %+v", got)
	}
	if cyl := w.Shape(1).Geometry().(scene.Cylinder); cyl.Height != scene.DefaultCylinderHeight {
		t.Fatalf("expected default cylinder height; got %f", cyl.Height)
	}

	// Camera ray through the frame center points at the target
	r := w.Camera().GetRay(DefaultFrameW/2, DefaultFrameH/2)
	if !r.Origin.ApproxEqual(types.XYZ(0, 0, -5)) || r.Dir[2] < 0.99 {
		t.Fatalf("expected center ray to start at the eye and point to +Z; got %+v", r)
	}
}

func TestBuildTransforms(t *testing.T) {
	sc := &Scene{
		Camera: Camera{Eye: types.XYZ(0, 0, -5), LookAt: types.XYZ(0, 0, 0)},
		Shapes: []Shape{
			{
				Type: "sphere",
				Transforms: []Transform{
					{Op: "translate", Args: []float32{1, 2, 3}},
					{Op: "scale", Args: []float32{2, 2, 2}},
					{Op: "rotate-x", Args: []float32{90}},
					{Op: "rotate-y", Args: []float32{45}},
					{Op: "rotate-z", Args: []float32{30}},
					{Op: "rotate", Args: []float32{0, 2, 0, 90}},
					{Op: "shear", Args: []float32{1, 0, 0, 0, 0, 0}},
				},
			},
		},
	}

	w, err := sc.Build()
	if err != nil {
		t.Fatal(err)
	}

	exp := types.Translate4(1, 2, 3).
		Mul4(types.Scale4(2, 2, 2)).
		Mul4(types.RotateX4(math32.Pi / 2)).
		Mul4(types.RotateY4(math32.Pi / 4)).
		Mul4(types.RotateZ4(math32.Pi / 6)).
		Mul4(types.RotateY4(math32.Pi / 2)).
		Mul4(types.Shear4(1, 0, 0, 0, 0, 0))
	if got := w.Shape(0).Matrix(); !got.ApproxEqual(exp) {
		t.Fatalf("expected shape transform %v; got %v", exp, got)
	}
}

func TestBuildMaterial(t *testing.T) {
	ambient, reflective, shininess := float32(0.3), float32(1), float32(50)
	sc := &Scene{
		Camera: Camera{Eye: types.XYZ(0, 0, -5), LookAt: types.XYZ(0, 0, 0)},
		Shapes: []Shape{
			{
				Type: "plane",
				Material: &Material{
					Pattern:    &Pattern{Type: "ring", A: types.Splat(1), B: types.Splat(0)},
					Ambient:    &ambient,
					Reflective: &reflective,
					Shininess:  &shininess,
				},
			},
		},
	}

	w, err := sc.Build()
	if err != nil {
		t.Fatal(err)
	}

	mat := w.Shape(0).Material()
	if mat.Ambient != 0.3 || mat.Reflective != 1 || mat.Shininess != 50 || mat.Diffuse != 0.9 {
		t.Fatalf("unexpected material %+v", *mat)
	}
	if _, isRing := mat.Pattern.(scene.RingPattern); !isRing {
		t.Fatalf("expected a ring pattern; got %T", mat.Pattern)
	}
}

func TestBuildErrors(t *testing.T) {
	validCamera := Camera{Eye: types.XYZ(0, 0, -5), LookAt: types.XYZ(0, 0, 0)}
	outOfRange, negative := float32(1.5), float32(-1)

	type spec struct {
		descr     string
		scene     Scene
		expErr    error
		expSubstr string
	}
	specs := []spec{
		{
			"eye equals look_at",
			Scene{Camera: Camera{Eye: types.XYZ(1, 1, 1), LookAt: types.XYZ(1, 1, 1)}},
			ErrDegenerateCamera, "",
		},
		{
			"up parallel to view direction",
			Scene{Camera: Camera{Eye: types.XYZ(0, 0, 0), LookAt: types.XYZ(0, 5, 0), Up: types.XYZ(0, 1, 0)}},
			ErrDegenerateCamera, "",
		},
		{
			"invalid fov",
			Scene{Camera: Camera{FOV: 200, Eye: types.XYZ(0, 0, -5), LookAt: types.XYZ(0, 0, 0)}},
			scene.ErrInvalidFOV, "",
		},
		{
			"unknown shape",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere"}, {Type: "torus"}}},
			ErrUnknownShape, "shape 1",
		},
		{
			"unknown pattern",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere", Material: &Material{Pattern: &Pattern{Type: "dots"}}}}},
			ErrUnknownPattern, "shape 0",
		},
		{
			"color and pattern",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere", Material: &Material{Color: vec(1, 0, 0), Pattern: &Pattern{Type: "ring"}}}}},
			nil, "mutually exclusive",
		},
		{
			"coefficient out of range",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere", Material: &Material{Diffuse: &outOfRange}}}},
			nil, "diffuse",
		},
		{
			"negative shininess",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere", Material: &Material{Shininess: &negative}}}},
			nil, "shininess",
		},
		{
			"unknown transform",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere", Transforms: []Transform{{Op: "twist", Args: []float32{1}}}}}},
			ErrUnknownTransform, "transform 0 (twist)",
		},
		{
			"wrong argument count",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere", Transforms: []Transform{{Op: "translate", Args: []float32{1}}}}}},
			nil, "expected 3 arguments",
		},
		{
			"zero rotation axis",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "sphere", Transforms: []Transform{{Op: "rotate", Args: []float32{0, 0, 0, 45}}}}}},
			nil, "rotation axis",
		},
		{
			"singular transform",
			Scene{Camera: validCamera, Shapes: []Shape{{Type: "plane"}, {Type: "sphere", Transforms: []Transform{
				{Op: "translate", Args: []float32{1, 0, 0}},
				{Op: "scale", Args: []float32{1, 0, 1}},
			}}}},
			types.ErrSingularMatrix, "shape 1: transform 1 (scale)",
		},
	}

	for _, s := range specs {
		_, err := s.scene.Build()
		if err == nil {
			t.Fatalf("[%s] expected an error", s.descr)
		}
		if s.expErr != nil && !errors.Is(err, s.expErr) {
			t.Fatalf("[%s] expected error to wrap %q; got %v", s.descr, s.expErr, err)
		}
		if s.expSubstr != "" && !strings.Contains(err.Error(), s.expSubstr) {
			t.Fatalf("[%s] expected error to contain %q; got %v", s.descr, s.expSubstr, err)
		}
	}
}

func TestDecodeEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Demo().Encode(&buf); err != nil {
		t.Fatal(err)
	}

	sc, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sc, Demo()) {
		t.Fatal("expected decoded scene to match the encoded one")
	}

	doc := `{
  "camera": {"eye": [0, 0, -5], "look_at": [0, 0, 0], "fov": 45},
  "lights": [{"position": [-10, 10, -10], "intensity": [1, 1, 1]}],
  "shapes": [
    {"type": "sphere", "material": {"color": [1, 0.2, 1], "reflective": 0.5}},
    {"type": "plane", "transforms": [{"op": "translate", "args": [0, -1, 0]}]}
  ]
}`
	sc, err = Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Shapes) != 2 || *sc.Shapes[0].Material.Reflective != 0.5 || sc.Shapes[1].Transforms[0].Op != "translate" {
		t.Fatalf("unexpected decoded scene %+v", sc)
	}

	if _, err = Decode(strings.NewReader(`{"shapes": [{"type": "sphere", "radius": 2}]}`)); err == nil {
		t.Fatal("expected an error for unknown fields")
	}
	if _, err = Decode(strings.NewReader(`{"shapes": `)); err == nil {
		t.Fatal("expected an error for malformed documents")
	}
}

func TestStats(t *testing.T) {
	stats := Demo().Stats()
	for _, exp := range []string{"640x320", "Spheres", "Planes", "Reflective", "Lights"} {
		if !strings.Contains(stats, exp) {
			t.Fatalf("expected stats to contain %q; got\n%s", exp, stats)
		}
	}
}
