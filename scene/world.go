package scene

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/types"
)

// The World contains the camera, the lights and the shapes of a scene. It is
// not modified while rendering so it can be shared between goroutines.
type World struct {
	camera *Camera
	lights []Light
	shapes []*Shape
}

// Create a new world.
func NewWorld(camera *Camera, lights []Light, shapes []*Shape) *World {
	return &World{
		camera: camera,
		lights: lights,
		shapes: shapes,
	}
}

// Get the world camera.
func (w *World) Camera() *Camera {
	return w.camera
}

// Get the world lights.
func (w *World) Lights() []Light {
	return w.lights
}

// Get the world shapes. The index of each shape is its ShapeID.
func (w *World) Shapes() []*Shape {
	return w.shapes
}

// Get the shape with the specified id.
func (w *World) Shape(id ShapeID) *Shape {
	return w.shapes[id]
}

// Intersect r with every shape in the world and return all hits sorted by
// distance. Hits with equal distance retain the shape insertion order.
func (w *World) Intersect(r types.Ray) Intersections {
	var xs Intersections
	for id, shape := range w.shapes {
		for _, t := range shape.Intersect(r) {
			xs = append(xs, Intersection{T: t, Shape: ShapeID(id)})
		}
	}

	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
	return xs
}

// Create the reference world: two concentric spheres lit by a single white
// light and a 1000x1000 camera at the origin looking towards -Z.
func DefaultWorld() *World {
	outer := NewSphere().SetMaterial(
		DefaultMaterial().
			WithColor(types.XYZ(0.8, 1.0, 0.6)).
			WithDiffuse(0.7).
			WithSpecular(0.5),
	)
	inner := NewSphere().Scale(0.5, 0.5, 0.5)

	light := NewLight(types.XYZ(-10, 10, -10), types.Splat(1))

	camera, err := NewCamera(1000, 1000, math32.Pi/4, types.Ident4())
	if err != nil {
		panic(fmt.Errorf("scene: invalid default camera: %s", err))
	}

	return NewWorld(camera, []Light{light}, []*Shape{outer, inner})
}
