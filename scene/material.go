package scene

import "github.com/achilleasa/go-raytrace/types"

// Defines the surface properties of a shape for the Phong illumination model.
type Material struct {
	// The surface color. Evaluated in object space.
	Pattern Pattern

	// Illumination coefficients in the [0, 1] range.
	Ambient    float32
	Diffuse    float32
	Specular   float32
	Reflective float32

	// Specular exponent; must be positive.
	Shininess float32
}

// Get a white, non-reflective material.
func DefaultMaterial() Material {
	return Material{
		Pattern:    SolidPattern(types.Splat(1)),
		Ambient:    0.1,
		Diffuse:    0.9,
		Specular:   0.9,
		Reflective: 0,
		Shininess:  200,
	}
}

func (m Material) WithColor(c types.Vec3) Material {
	m.Pattern = SolidPattern(c)
	return m
}

func (m Material) WithPattern(p Pattern) Material {
	m.Pattern = p
	return m
}

func (m Material) WithAmbient(v float32) Material {
	m.Ambient = v
	return m
}

func (m Material) WithDiffuse(v float32) Material {
	m.Diffuse = v
	return m
}

func (m Material) WithSpecular(v float32) Material {
	m.Specular = v
	return m
}

func (m Material) WithReflective(v float32) Material {
	m.Reflective = v
	return m
}

func (m Material) WithShininess(v float32) Material {
	m.Shininess = v
	return m
}

// Get the surface color at an object space point. Materials without a
// pattern are white.
func (m *Material) ColorAt(p types.Vec3) types.Vec3 {
	if m.Pattern == nil {
		return types.Splat(1)
	}
	return m.Pattern.ColorAt(p)
}
