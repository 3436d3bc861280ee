package scene

import "github.com/achilleasa/go-raytrace/types"

// Get the demo scene: three spheres, one of them reflective, resting on a
// checkered floor and lit by two lights.
func Demo() *Scene {
	return &Scene{
		Camera: Camera{
			Width:  640,
			Height: 320,
			FOV:    60,
			Eye:    types.XYZ(0, 1.5, -5),
			LookAt: types.XYZ(0, 1, 0),
			Up:     types.XYZ(0, 1, 0),
		},
		Lights: []Light{
			{Position: types.XYZ(-10, 10, -10), Intensity: types.Splat(0.8)},
			{Position: types.XYZ(5, 8, -8), Intensity: types.Splat(0.3)},
		},
		Shapes: []Shape{
			{
				Type: "plane",
				Material: &Material{
					Pattern:    &Pattern{Type: "checker", A: types.Splat(0.9), B: types.Splat(0.2)},
					Specular:   float(0),
					Reflective: float(0.1),
				},
			},
			{
				Type: "sphere",
				Material: &Material{
					Color:      vec(0.1, 0.2, 0.5),
					Diffuse:    float(0.7),
					Specular:   float(0.3),
					Reflective: float(0.6),
				},
				Transforms: []Transform{
					{Op: "translate", Args: []float32{-0.5, 1, 0.5}},
				},
			},
			{
				Type: "sphere",
				Material: &Material{
					Pattern: &Pattern{Type: "stripe", A: types.XYZ(0.5, 1, 0.1), B: types.XYZ(0.2, 0.6, 0.1)},
					Diffuse: float(0.7),
				},
				Transforms: []Transform{
					{Op: "translate", Args: []float32{1.5, 0.5, -0.5}},
					{Op: "scale", Args: []float32{0.5, 0.5, 0.5}},
					{Op: "rotate-z", Args: []float32{30}},
				},
			},
			{
				Type: "sphere",
				Material: &Material{
					Color:    vec(1, 0.8, 0.1),
					Diffuse:  float(0.7),
					Specular: float(0.3),
				},
				Transforms: []Transform{
					{Op: "translate", Args: []float32{-1.5, 0.33, -0.75}},
					{Op: "scale", Args: []float32{0.33, 0.33, 0.33}},
				},
			},
		},
	}
}

func float(v float32) *float32 {
	return &v
}

func vec(x, y, z float32) *types.Vec3 {
	v := types.XYZ(x, y, z)
	return &v
}
