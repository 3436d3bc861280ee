package renderer

import "errors"

var (
	ErrNoWorkers        = errors.New("renderer: no block workers available")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
