package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/achilleasa/go-raytrace/types"
)

// Scene is the serializable description of a world. Scenes are stored as
// JSON documents and converted to a renderable world via Build.
type Scene struct {
	Camera Camera  `json:"camera"`
	Lights []Light `json:"lights"`
	Shapes []Shape `json:"shapes"`
}

// Camera description. The field of view is specified in degrees.
type Camera struct {
	Width  uint32     `json:"width,omitempty"`
	Height uint32     `json:"height,omitempty"`
	FOV    float32    `json:"fov,omitempty"`
	Eye    types.Vec3 `json:"eye"`
	LookAt types.Vec3 `json:"look_at"`
	Up     types.Vec3 `json:"up,omitempty"`
}

// Point light description.
type Light struct {
	Position  types.Vec3 `json:"position"`
	Intensity types.Vec3 `json:"intensity"`
}

// Shape description. Type is one of "sphere", "plane" or "cylinder".
// Height is only used by cylinders.
type Shape struct {
	Type       string      `json:"type"`
	Height     float32     `json:"height,omitempty"`
	Material   *Material   `json:"material,omitempty"`
	Transforms []Transform `json:"transforms,omitempty"`
}

// Material description. Unset fields retain their default values.
type Material struct {
	Color      *types.Vec3 `json:"color,omitempty"`
	Pattern    *Pattern    `json:"pattern,omitempty"`
	Ambient    *float32    `json:"ambient,omitempty"`
	Diffuse    *float32    `json:"diffuse,omitempty"`
	Specular   *float32    `json:"specular,omitempty"`
	Reflective *float32    `json:"reflective,omitempty"`
	Shininess  *float32    `json:"shininess,omitempty"`
}

// Two-color pattern description. Type is one of "stripe", "checker" or "ring".
type Pattern struct {
	Type string     `json:"type"`
	A    types.Vec3 `json:"a"`
	B    types.Vec3 `json:"b"`
}

// A single transformation step. Transformations are composed in the order
// they are listed. Angles are specified in degrees.
//
// Supported ops and their arguments:
//   - translate: x, y, z
//   - scale: x, y, z
//   - rotate-x, rotate-y, rotate-z: angle
//   - rotate: axis x, axis y, axis z, angle
//   - shear: xy, xz, yx, yz, zx, zy
type Transform struct {
	Op   string    `json:"op"`
	Args []float32 `json:"args"`
}

// Decode a JSON scene description. Unknown fields are rejected.
func Decode(r io.Reader) (*Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	sc := &Scene{}
	if err := decoder.Decode(sc); err != nil {
		return nil, fmt.Errorf("scene: could not decode scene description: %w", err)
	}
	return sc, nil
}

// Encode scene description as indented JSON.
func (sc *Scene) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sc)
}
