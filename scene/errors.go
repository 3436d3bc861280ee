package scene

import "errors"

var (
	ErrInvalidFrameSize = errors.New("scene: frame width and height must be greater than zero")
	ErrInvalidFOV       = errors.New("scene: field of view must be in the (0, pi) range")
)
