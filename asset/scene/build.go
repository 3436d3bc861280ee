package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Camera defaults used when a description omits them.
const (
	DefaultFrameW uint32  = 640
	DefaultFrameH uint32  = 480
	DefaultFOV    float32 = 60
)

var (
	ErrDegenerateCamera = errors.New("scene: camera eye, look_at and up vectors do not define a valid view")
	ErrUnknownShape     = errors.New("scene: unknown shape type")
	ErrUnknownPattern   = errors.New("scene: unknown pattern type")
	ErrUnknownTransform = errors.New("scene: unknown transform op")
)

type transformOp struct {
	args  int
	build func(args []float32) (types.Mat4, error)
}

var transformOps = map[string]transformOp{
	"translate": {3, func(a []float32) (types.Mat4, error) {
		return types.Translate4(a[0], a[1], a[2]), nil
	}},
	"scale": {3, func(a []float32) (types.Mat4, error) {
		return types.Scale4(a[0], a[1], a[2]), nil
	}},
	"rotate-x": {1, func(a []float32) (types.Mat4, error) {
		return types.RotateX4(radians(a[0])), nil
	}},
	"rotate-y": {1, func(a []float32) (types.Mat4, error) {
		return types.RotateY4(radians(a[0])), nil
	}},
	"rotate-z": {1, func(a []float32) (types.Mat4, error) {
		return types.RotateZ4(radians(a[0])), nil
	}},
	"rotate": {4, func(a []float32) (types.Mat4, error) {
		axis := types.XYZ(a[0], a[1], a[2])
		if axis.Len() < types.Epsilon {
			return types.Mat4{}, errors.New("rotation axis must not be zero")
		}
		return types.RotateAxis4(axis, radians(a[3])), nil
	}},
	"shear": {6, func(a []float32) (types.Mat4, error) {
		return types.Shear4(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}},
}

// Build a renderable world from the scene description.
func (sc *Scene) Build() (*scene.World, error) {
	camera, err := sc.Camera.build()
	if err != nil {
		return nil, err
	}

	lights := make([]scene.Light, len(sc.Lights))
	for idx, l := range sc.Lights {
		lights[idx] = scene.NewLight(l.Position, l.Intensity)
	}

	shapes := make([]*scene.Shape, len(sc.Shapes))
	for idx, s := range sc.Shapes {
		if shapes[idx], err = s.build(); err != nil {
			return nil, fmt.Errorf("scene: shape %d: %w", idx, err)
		}
	}

	return scene.NewWorld(camera, lights, shapes), nil
}

func (c Camera) build() (*scene.Camera, error) {
	width, height, fov := c.Width, c.Height, c.FOV
	if width == 0 {
		width = DefaultFrameW
	}
	if height == 0 {
		height = DefaultFrameH
	}
	if fov == 0 {
		fov = DefaultFOV
	}

	up := c.Up
	if up == (types.Vec3{}) {
		up = types.XYZ(0, 1, 0)
	}

	forward := c.LookAt.Sub(c.Eye)
	if forward.Len() < types.Epsilon || forward.Normalize().Cross(up.Normalize()).Len() < types.Epsilon {
		return nil, ErrDegenerateCamera
	}

	return scene.NewCamera(width, height, radians(fov), types.LookAtV(c.Eye, c.LookAt, up))
}

func (s Shape) build() (*scene.Shape, error) {
	var shape *scene.Shape
	switch s.Type {
	case "sphere":
		shape = scene.NewSphere()
	case "plane":
		shape = scene.NewPlane()
	case "cylinder":
		height := s.Height
		if height == 0 {
			height = scene.DefaultCylinderHeight
		}
		if height < 0 {
			return nil, fmt.Errorf("cylinder height must be positive; got %f", height)
		}
		shape = scene.NewShape(scene.Cylinder{Height: height})
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, s.Type)
	}

	if s.Material != nil {
		mat, err := s.Material.build()
		if err != nil {
			return nil, err
		}
		shape.SetMaterial(mat)
	}

	for idx, tr := range s.Transforms {
		m, err := tr.matrix()
		if err == nil {
			err = shape.Apply(m)
		}
		if err != nil {
			return nil, fmt.Errorf("transform %d (%s): %w", idx, tr.Op, err)
		}
	}

	return shape, nil
}

func (m Material) build() (scene.Material, error) {
	mat := scene.DefaultMaterial()

	if m.Color != nil && m.Pattern != nil {
		return mat, errors.New("material color and pattern are mutually exclusive")
	}
	if m.Color != nil {
		mat = mat.WithColor(*m.Color)
	}
	if m.Pattern != nil {
		pattern, err := m.Pattern.build()
		if err != nil {
			return mat, err
		}
		mat = mat.WithPattern(pattern)
	}

	coefficients := []struct {
		name  string
		value *float32
		apply func(scene.Material, float32) scene.Material
	}{
		{"ambient", m.Ambient, scene.Material.WithAmbient},
		{"diffuse", m.Diffuse, scene.Material.WithDiffuse},
		{"specular", m.Specular, scene.Material.WithSpecular},
		{"reflective", m.Reflective, scene.Material.WithReflective},
	}
	for _, c := range coefficients {
		if c.value == nil {
			continue
		}
		if *c.value < 0 || *c.value > 1 {
			return mat, fmt.Errorf("material %s coefficient must be in the [0, 1] range; got %f", c.name, *c.value)
		}
		mat = c.apply(mat, *c.value)
	}

	if m.Shininess != nil {
		if *m.Shininess <= 0 {
			return mat, fmt.Errorf("material shininess must be positive; got %f", *m.Shininess)
		}
		mat = mat.WithShininess(*m.Shininess)
	}

	return mat, nil
}

func (p Pattern) build() (scene.Pattern, error) {
	switch p.Type {
	case "stripe":
		return scene.StripePattern{A: p.A, B: p.B}, nil
	case "checker":
		return scene.CheckerPattern{A: p.A, B: p.B}, nil
	case "ring":
		return scene.RingPattern{A: p.A, B: p.B}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownPattern, p.Type)
}

func (tr Transform) matrix() (types.Mat4, error) {
	op, ok := transformOps[tr.Op]
	if !ok {
		return types.Mat4{}, ErrUnknownTransform
	}
	if len(tr.Args) != op.args {
		return types.Mat4{}, fmt.Errorf("expected %d arguments; got %d", op.args, len(tr.Args))
	}
	return op.build(tr.Args)
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
