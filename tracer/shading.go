package tracer

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Get the surface color for a shading context by summing the contribution
// of every light in the world.
func (tr *Tracer) ShadeHit(comp Comp) types.Vec3 {
	var color types.Vec3
	for _, light := range tr.world.Lights() {
		color = color.Add(tr.Lighting(comp, light))
	}
	return color
}

// Evaluate the Phong illumination model for a single light. Points that face
// away from the light or are shadowed only receive the ambient term.
func (tr *Tracer) Lighting(comp Comp, light scene.Light) types.Vec3 {
	shape := tr.world.Shape(comp.Shape)
	mat := shape.Material()

	color := shape.ColorAt(comp.Point).MulVec(light.Intensity)
	ambient := color.Mul(mat.Ambient)

	// A single light ray from the biased hit point drives both the shading
	// terms and the shadow test.
	lightRay := light.RayAt(comp.OverPoint)
	lightDot := lightRay.Dir.Neg().Dot(comp.Normal)
	if lightDot < 0 || tr.occluded(comp, lightRay, light.DistanceTo(comp.OverPoint)) {
		return ambient
	}

	diffuse := color.Mul(mat.Diffuse * lightDot)

	reflectDot := lightRay.Dir.Reflect(comp.Normal).Dot(comp.Eye)
	if reflectDot <= 0 {
		return ambient.Add(diffuse)
	}

	specular := light.Intensity.Mul(mat.Specular * math32.Pow(reflectDot, mat.Shininess))
	return ambient.Add(diffuse).Add(specular)
}

// Check whether any other shape blocks the path between the hit point and
// the light.
func (tr *Tracer) IsShadowed(comp Comp, light scene.Light) bool {
	return tr.occluded(comp, light.RayAt(comp.OverPoint), light.DistanceTo(comp.OverPoint))
}

// Cast a shadow ray back along lightRay and report whether a shape other
// than the shaded one is hit before reaching the light.
func (tr *Tracer) occluded(comp Comp, lightRay types.Ray, distance float32) bool {
	shadowRay := types.NewRay(lightRay.Origin, lightRay.Dir.Neg())

	for _, x := range tr.world.Intersect(shadowRay) {
		if x.Shape == comp.Shape || x.T <= 0 {
			continue
		}
		if x.T >= distance {
			break
		}
		return true
	}

	return false
}
