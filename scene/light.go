package scene

import "github.com/achilleasa/go-raytrace/types"

// A point light source.
type Light struct {
	Position  types.Vec3
	Intensity types.Vec3
}

// Create a point light.
func NewLight(position, intensity types.Vec3) Light {
	return Light{
		Position:  position,
		Intensity: intensity,
	}
}

// Get a ray that starts at p and points away from the light. Its direction
// is the normalized incident light direction at p.
func (l Light) RayAt(p types.Vec3) types.Ray {
	return types.NewRay(p, p.Sub(l.Position).Normalize())
}

// Get the distance between p and the light.
func (l Light) DistanceTo(p types.Vec3) float32 {
	return l.Position.Sub(p).Len()
}
