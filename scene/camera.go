package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/achilleasa/go-raytrace/types"
)

// The camera maps frame pixels to world space rays. Its transform is the view
// transformation; rays are generated in camera space and moved to world space
// using the cached inverse view matrix.
type Camera struct {
	Transform

	width  uint32
	height uint32

	// Vertical field of view in radians.
	fov float32

	halfWidth  float32
	halfHeight float32
	xStep      float32
	yStep      float32
}

// Create a camera for a frame of the given dimensions, a vertical field of
// view (in radians) and a view transformation matrix.
func NewCamera(width, height uint32, fov float32, view types.Mat4) (*Camera, error) {
	if fov <= 0 || fov >= math32.Pi {
		return nil, ErrInvalidFOV
	}

	c := &Camera{
		Transform: IdentityTransform(),
		fov:       fov,
	}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	if err := c.SetViewTransform(view); err != nil {
		return nil, fmt.Errorf("scene: invalid camera view transform: %s", err)
	}

	return c, nil
}

// Get the frame width in pixels.
func (c *Camera) Width() uint32 {
	return c.width
}

// Get the frame height in pixels.
func (c *Camera) Height() uint32 {
	return c.height
}

// Get the vertical field of view in radians.
func (c *Camera) FOV() float32 {
	return c.fov
}

// Update the frame dimensions. The view transformation is not affected.
func (c *Camera) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return ErrInvalidFrameSize
	}

	aspect := float32(width) / float32(height)
	c.width = width
	c.height = height
	c.halfHeight = math32.Tan(c.fov / 2)
	c.halfWidth = c.halfHeight * aspect
	c.xStep = 2 / float32(width)
	c.yStep = 2 / float32(height)

	return nil
}

// Replace the view transformation and recalculate its inverse.
func (c *Camera) SetViewTransform(view types.Mat4) error {
	return c.SetTransform(view)
}

// Get the world space ray that passes through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner of the frame.
func (c *Camera) GetRay(x, y uint32) types.Ray {
	camX := (1 - (float32(x)+0.5)*c.xStep) * c.halfWidth
	camY := (1 - (float32(y)+0.5)*c.yStep) * c.halfHeight

	origin := c.inverse.MulPoint(types.Vec3{})
	target := c.inverse.MulPoint(types.XYZ(camX, camY, -1))

	return types.NewRay(origin, target.Sub(origin).Normalize())
}
